// Package catalog holds the portal's hand-maintained document catalog and
// navigation tree.
package catalog

import "github.com/fwojciec/devhub"

// Items returns the searchable document catalog in display order.
// The returned slice is a fresh copy.
func Items() []devhub.SearchItem {
	items := make([]devhub.SearchItem, len(searchItems))
	copy(items, searchItems)
	return items
}

// Tree returns the sidebar navigation tree.
// The returned tree is a deep copy.
func Tree() []devhub.TreeNode {
	return cloneNodes(contentTree)
}

func cloneNodes(nodes []devhub.TreeNode) []devhub.TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]devhub.TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Children = cloneNodes(n.Children)
	}
	return out
}

var searchItems = []devhub.SearchItem{
	{
		Title:    "Home",
		Path:     "/",
		Content:  "Developer Hub - Centralized knowledge base for all development teams",
		Category: "Main",
	},
	{
		Title:    "00. Principles",
		Path:     "/00-principles",
		Content:  "Core development principles and values. Ownership & Responsibility, Safety Over Speed, Promotion Not Deployment",
		Category: "Principles",
	},
	{
		Title:    "10. Developer Contracts",
		Path:     "/10-developer-contracts",
		Content:  "Agreements and responsibilities. Local Testing Contract, CI Responsibility Contract, Staging Promotion Contract",
		Category: "Contracts",
	},
	{
		Title:    "20. Workflows",
		Path:     "/20-workflows",
		Content:  "Development workflows and processes. Branching Strategy, Release Flow, Hotfix Process",
		Category: "Workflows",
	},
	{
		Title:    "30. Tooling",
		Path:     "/30-tooling",
		Content:  "Development tools and setup. Local Setup, Test Commands, CI Overview",
		Category: "Tooling",
	},
	{
		Title:    "40. Reference",
		Path:     "/40-reference",
		Content:  "Architecture and technical reference. Architecture, ADRs, Runbooks",
		Category: "Reference",
	},
	{
		Title:    "Domains Overview",
		Path:     "/domains",
		Content:  "Domain-specific documentation. API Integration, Integration Services, Security, Platform Engineering",
		Category: "Domains",
	},
	{
		Title:    "API Integration",
		Path:     "/domains/api-integration",
		Content:  "API integration patterns, Java backend + React frontend patterns, and best practices",
		Category: "API Integration",
	},
	{
		Title:    "Backend API Integration",
		Path:     "/domains/api-integration/backend",
		Content:  "Backend API integration patterns, best practices, and implementation guides for Java Spring Boot",
		Category: "API Integration",
	},
	{
		Title:    "Java Backend API Integration",
		Path:     "/domains/api-integration/backend/java",
		Content:  "Java Spring Boot backend API integration patterns and examples. REST APIs, authentication, error handling",
		Category: "API Integration",
	},
	{
		Title:    "Java Overview",
		Path:     "/domains/api-integration/backend/java/overview",
		Content:  "Java releases, version status, best practices, var keyword, JUnit, Mockito, testing tools",
		Category: "API Integration",
	},
	{
		Title:    "Testing in Java",
		Path:     "/domains/api-integration/backend/java/testing",
		Content:  "Java testing with JUnit 5, Mockito, AssertJ. Testing patterns, best practices, integration testing",
		Category: "API Integration",
	},
	{
		Title:    "REST APIs in Java",
		Path:     "/domains/api-integration/backend/java/rest",
		Content:  "REST API implementation patterns using Java Spring Boot. GET, POST, PUT, DELETE operations",
		Category: "API Integration",
	},
	{
		Title:    "Authentication in Java",
		Path:     "/domains/api-integration/backend/java/authentication",
		Content:  "Authentication patterns and implementations for Java Spring Boot backends. JWT, OAuth2, sessions",
		Category: "API Integration",
	},
	{
		Title:    "JWT Authentication in Java",
		Path:     "/domains/api-integration/backend/java/authentication/jwt",
		Content:  "JSON Web Token (JWT) authentication implementation for Java Spring Boot",
		Category: "API Integration",
	},
	{
		Title:    "OAuth2 in Java",
		Path:     "/domains/api-integration/backend/java/authentication/oauth2",
		Content:  "OAuth2 authentication implementation for Java Spring Boot",
		Category: "API Integration",
	},
	{
		Title:    "Session Management in Java",
		Path:     "/domains/api-integration/backend/java/authentication/sessions",
		Content:  "Session-based authentication for Java Spring Boot",
		Category: "API Integration",
	},
	{
		Title:    "Error Handling in Java",
		Path:     "/domains/api-integration/backend/java/error-handling",
		Content:  "Error handling patterns and best practices for Java Spring Boot APIs",
		Category: "API Integration",
	},
	{
		Title:    "Data Transformation in Java",
		Path:     "/domains/api-integration/backend/java/data-transformation",
		Content:  "Data transformation patterns for Java Spring Boot APIs",
		Category: "API Integration",
	},
	{
		Title:    "Frontend API Integration",
		Path:     "/domains/api-integration/frontend",
		Content:  "Frontend API integration patterns, best practices, and implementation guides for React",
		Category: "API Integration",
	},
	{
		Title:    "React Frontend API Integration",
		Path:     "/domains/api-integration/frontend/react",
		Content:  "React frontend API integration patterns and examples. REST APIs, authentication, error handling",
		Category: "API Integration",
	},
	{
		Title:    "REST APIs in React",
		Path:     "/domains/api-integration/frontend/react/rest",
		Content:  "REST API integration patterns using React and TypeScript. GET, POST, PUT, DELETE operations",
		Category: "API Integration",
	},
	{
		Title:    "Authentication in React",
		Path:     "/domains/api-integration/frontend/react/authentication",
		Content:  "Authentication patterns and implementations for React frontends. JWT, OAuth2, sessions",
		Category: "API Integration",
	},
	{
		Title:    "JWT Authentication in React",
		Path:     "/domains/api-integration/frontend/react/authentication/jwt",
		Content:  "JSON Web Token (JWT) authentication implementation for React applications",
		Category: "API Integration",
	},
	{
		Title:    "OAuth2 in React",
		Path:     "/domains/api-integration/frontend/react/authentication/oauth2",
		Content:  "OAuth2 authentication implementation for React applications",
		Category: "API Integration",
	},
	{
		Title:    "Session Management in React",
		Path:     "/domains/api-integration/frontend/react/authentication/sessions",
		Content:  "Session-based authentication for React applications",
		Category: "API Integration",
	},
	{
		Title:    "Error Handling in React",
		Path:     "/domains/api-integration/frontend/react/error-handling",
		Content:  "Error handling patterns and best practices for React API calls",
		Category: "API Integration",
	},
	{
		Title:    "Data Transformation in React",
		Path:     "/domains/api-integration/frontend/react/data-transformation",
		Content:  "Data transformation patterns for React frontends",
		Category: "API Integration",
	},
	{
		Title:    "Database Notes",
		Path:     "/30-tooling/database",
		Content:  "Database setup, configuration, and best practices. PostgreSQL, connection pooling, migrations",
		Category: "Tooling",
	},
	{
		Title:    "Integration Services",
		Path:     "/domains/integration-services",
		Content:  "Third-party integrations and services. Email, Payments, CI/CD tools",
		Category: "Domains",
	},
	{
		Title:    "Email Services",
		Path:     "/domains/integration-services/implementation/email-services",
		Content:  "Email integration with Resend. Transactional emails, templates, SMTP",
		Category: "Integration Services",
	},
	{
		Title:    "Payment Services",
		Path:     "/domains/integration-services/implementation/payment-services",
		Content:  "Payment processing with Stripe. Checkout sessions, subscriptions, webhooks",
		Category: "Integration Services",
	},
	{
		Title:    "CI/CD Tools",
		Path:     "/domains/integration-services/implementation/ci-cd-tools",
		Content:  "Continuous Integration and Deployment. Vercel, GitHub Actions, deployment strategies",
		Category: "Integration Services",
	},
	{
		Title:    "Capabilities Matrix",
		Path:     "/domains/integration-services/implementation/capabilities-matrix",
		Content:  "Build vs buy decisions. Integration capabilities and recommendations",
		Category: "Integration Services",
	},
	{
		Title:    "Security Overview",
		Path:     "/domains/security",
		Content:  "Security practices and procedures. Authentication, encryption, OWASP",
		Category: "Security",
	},
	{
		Title:    "Security Architecture",
		Path:     "/domains/security/architecture/overview",
		Content:  "Security architecture and design. System security, threat modeling",
		Category: "Security",
	},
	{
		Title:    "Security Procedures",
		Path:     "/domains/security/implementation/security-procedures",
		Content:  "Security implementation procedures. Best practices, guidelines",
		Category: "Security",
	},
	{
		Title:    "Product Security",
		Path:     "/domains/security/implementation/product-security",
		Content:  "Product security practices. Secure development lifecycle",
		Category: "Security",
	},
	{
		Title:    "Security Endpoints",
		Path:     "/domains/security/api/security-endpoints",
		Content:  "API security endpoints. Authentication, authorization, secure APIs",
		Category: "Security",
	},
	{
		Title:    "Platform Engineering",
		Path:     "/domains/platform-engineering",
		Content:  "Infrastructure and deployment. Platform concerns, deployment strategies",
		Category: "Platform Engineering",
	},
	{
		Title:    "Deployment Strategy",
		Path:     "/domains/platform-engineering/implementation/deployment-strategy",
		Content:  "Deployment strategies and practices. CI/CD, infrastructure as code",
		Category: "Platform Engineering",
	},
	{
		Title:    "Nexus Digital Agents",
		Path:     "/domains/nexus-agents",
		Content:  "Nexus Digital Agents system for collaborative development. Product Owner, Architect, Frontend, Backend, QA, Security, DevOps",
		Category: "Team",
	},
	{
		Title:    "Sprint 001: Dev Hub Improvements",
		Path:     "/domains/nexus-agents/sprints/SPRINT_001_DEV_HUB_IMPROVEMENTS",
		Content:  "Sprint plan for improving Developer Hub. Led by Catalyst Product Owner. User experience, performance, accessibility improvements",
		Category: "Sprints",
	},
	{
		Title:    "Sprint 001 Kickoff",
		Path:     "/domains/nexus-agents/sprints/SPRINT_KICKOFF",
		Content:  "Sprint kickoff for Developer Hub improvements. Catalyst Product Owner leading the team. Mission, priorities, team assignments",
		Category: "Sprints",
	},
	{
		Title:    "Catalyst - Product Owner",
		Path:     "/domains/nexus-agents/agents/Agent — Catalyst (Product Owner)",
		Content:  "Catalyst Product Owner agent. Product vision, user research, feature prioritization, user stories, backlog management",
		Category: "Agents",
	},}

var contentTree = []devhub.TreeNode{
	{Name: "Home", Path: "/", Kind: devhub.NodeFile},
	{Name: "00. Principles", Path: "/00-principles", Kind: devhub.NodeDirectory},
	{Name: "10. Developer Contracts", Path: "/10-developer-contracts", Kind: devhub.NodeDirectory},
	{Name: "20. Workflows", Path: "/20-workflows", Kind: devhub.NodeDirectory},
	{Name: "30. Tooling", Path: "/30-tooling", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
		{Name: "Database Notes", Path: "/30-tooling/database", Kind: devhub.NodeFile},
	}},
	{Name: "40. Reference", Path: "/40-reference", Kind: devhub.NodeDirectory},
	{Name: "Domains", Path: "/domains", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
		{Name: "API Integration", Path: "/domains/api-integration", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
			{Name: "Overview", Path: "/domains/api-integration", Kind: devhub.NodeFile},
			{Name: "Backend", Path: "/domains/api-integration/backend", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
				{Name: "Overview", Path: "/domains/api-integration/backend", Kind: devhub.NodeFile},
				{Name: "Java", Path: "/domains/api-integration/backend/java", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
					{Name: "Overview", Path: "/domains/api-integration/backend/java", Kind: devhub.NodeFile},
					{Name: "Java Overview", Path: "/domains/api-integration/backend/java/overview", Kind: devhub.NodeFile},
					{Name: "REST APIs", Path: "/domains/api-integration/backend/java/rest", Kind: devhub.NodeFile},
					{Name: "Authentication", Path: "/domains/api-integration/backend/java/authentication", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
						{Name: "Overview", Path: "/domains/api-integration/backend/java/authentication", Kind: devhub.NodeFile},
						{Name: "JWT", Path: "/domains/api-integration/backend/java/authentication/jwt", Kind: devhub.NodeFile},
						{Name: "OAuth2", Path: "/domains/api-integration/backend/java/authentication/oauth2", Kind: devhub.NodeFile},
						{Name: "Sessions", Path: "/domains/api-integration/backend/java/authentication/sessions", Kind: devhub.NodeFile},
					}},
					{Name: "Error Handling", Path: "/domains/api-integration/backend/java/error-handling", Kind: devhub.NodeFile},
					{Name: "Data Transformation", Path: "/domains/api-integration/backend/java/data-transformation", Kind: devhub.NodeFile},
					{Name: "Testing", Path: "/domains/api-integration/backend/java/testing", Kind: devhub.NodeFile},
				}},
			}},
			{Name: "Frontend", Path: "/domains/api-integration/frontend", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
				{Name: "Overview", Path: "/domains/api-integration/frontend", Kind: devhub.NodeFile},
				{Name: "React", Path: "/domains/api-integration/frontend/react", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
					{Name: "Overview", Path: "/domains/api-integration/frontend/react", Kind: devhub.NodeFile},
					{Name: "REST APIs", Path: "/domains/api-integration/frontend/react/rest", Kind: devhub.NodeFile},
					{Name: "Authentication", Path: "/domains/api-integration/frontend/react/authentication", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
						{Name: "Overview", Path: "/domains/api-integration/frontend/react/authentication", Kind: devhub.NodeFile},
						{Name: "JWT", Path: "/domains/api-integration/frontend/react/authentication/jwt", Kind: devhub.NodeFile},
						{Name: "OAuth2", Path: "/domains/api-integration/frontend/react/authentication/oauth2", Kind: devhub.NodeFile},
						{Name: "Sessions", Path: "/domains/api-integration/frontend/react/authentication/sessions", Kind: devhub.NodeFile},
					}},
					{Name: "Error Handling", Path: "/domains/api-integration/frontend/react/error-handling", Kind: devhub.NodeFile},
					{Name: "Data Transformation", Path: "/domains/api-integration/frontend/react/data-transformation", Kind: devhub.NodeFile},
				}},
			}},
		}},
		{Name: "Integration Services", Path: "/domains/integration-services", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
			{Name: "Email Services", Path: "/domains/integration-services/implementation/email-services", Kind: devhub.NodeFile},
			{Name: "Payment Services", Path: "/domains/integration-services/implementation/payment-services", Kind: devhub.NodeFile},
			{Name: "CI/CD Tools", Path: "/domains/integration-services/implementation/ci-cd-tools", Kind: devhub.NodeFile},
			{Name: "Capabilities Matrix", Path: "/domains/integration-services/implementation/capabilities-matrix", Kind: devhub.NodeFile},
		}},
		{Name: "Security", Path: "/domains/security", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
			{Name: "Overview", Path: "/domains/security", Kind: devhub.NodeFile},
			{Name: "Architecture", Path: "/domains/security/architecture/overview", Kind: devhub.NodeFile},
			{Name: "Security Procedures", Path: "/domains/security/implementation/security-procedures", Kind: devhub.NodeFile},
			{Name: "Product Security", Path: "/domains/security/implementation/product-security", Kind: devhub.NodeFile},
			{Name: "Security Endpoints", Path: "/domains/security/api/security-endpoints", Kind: devhub.NodeFile},
		}},
		{Name: "Platform Engineering", Path: "/domains/platform-engineering", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
			{Name: "Overview", Path: "/domains/platform-engineering", Kind: devhub.NodeFile},
			{Name: "Deployment Strategy", Path: "/domains/platform-engineering/implementation/deployment-strategy", Kind: devhub.NodeFile},
		}},
		{Name: "Nexus Agents", Path: "/domains/nexus-agents", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
			{Name: "Overview", Path: "/domains/nexus-agents", Kind: devhub.NodeFile},
			{Name: "Sprint 001", Path: "/domains/nexus-agents/sprints/SPRINT_001_DEV_HUB_IMPROVEMENTS", Kind: devhub.NodeFile},
			{Name: "Sprint Kickoff", Path: "/domains/nexus-agents/sprints/SPRINT_KICKOFF", Kind: devhub.NodeFile},
			{Name: "Agents", Path: "/domains/nexus-agents/agents", Kind: devhub.NodeDirectory, Children: []devhub.TreeNode{
				{Name: "Catalyst (PO)", Path: "/domains/nexus-agents/agents/Agent — Catalyst (Product Owner)", Kind: devhub.NodeFile},
				{Name: "Architect", Path: "/domains/nexus-agents/agents/Agent — Architect (Principal Engineer)", Kind: devhub.NodeFile},
				{Name: "Prism (Frontend)", Path: "/domains/nexus-agents/agents/Agent — Prism (Frontend Engineer)", Kind: devhub.NodeFile},
				{Name: "Forge (Backend)", Path: "/domains/nexus-agents/agents/Agent — Forge (Backend Engineer)", Kind: devhub.NodeFile},
				{Name: "Sentinel (QA)", Path: "/domains/nexus-agents/agents/Agent — Sentinel (QA Engineer)", Kind: devhub.NodeFile},
				{Name: "Guardian (Security)", Path: "/domains/nexus-agents/agents/Agent — Guardian (Security Analyst)", Kind: devhub.NodeFile},
				{Name: "Atlas (DevOps)", Path: "/domains/nexus-agents/agents/Agent — Atlas (DevOps Engineer)", Kind: devhub.NodeFile},
				{Name: "Aura (UX/UI)", Path: "/domains/nexus-agents/agents/Agent — Aura (UX-UI Designer)", Kind: devhub.NodeFile},
			}},
		}},
	}},
}
