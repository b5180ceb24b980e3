// Package services provides the quote pricing engine, the service catalog,
// and document export for QuoteForge.
package services

import (
	"fmt"
	"strings"
)

// Category classifies a catalog offering.
type Category string

const (
	CategoryDevelopment Category = "Development"
	CategoryDesign      Category = "Design"
	CategoryMarketing   Category = "Marketing"
	CategoryExtras      Category = "Extras"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryDesign,
	CategoryMarketing,
	CategoryExtras,
}

func validCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Offering is a single catalog entry: a service with a fixed base price and
// estimated duration. Offerings are defined once at startup and never mutated.
type Offering struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Category      Category `json:"category"`
	EstimatedDays int      `json:"estimatedDays"`
	Description   string   `json:"description,omitempty"`
}

// Catalog is an ordered, read-only collection of offerings indexed by ID.
type Catalog struct {
	offerings []Offering
	byID      map[string]Offering
}

// NewCatalog validates the offering list and builds a catalog. It rejects
// unknown categories, duplicate or empty IDs, empty names, negative prices
// and non-positive durations up front so bad entries never reach pricing.
func NewCatalog(offerings []Offering) (*Catalog, error) {
	byID := make(map[string]Offering, len(offerings))
	for _, o := range offerings {
		if o.ID == "" {
			return nil, fmt.Errorf("offering %q has empty ID", o.Name)
		}
		if o.Name == "" {
			return nil, fmt.Errorf("offering %s has empty name", o.ID)
		}
		if _, exists := byID[o.ID]; exists {
			return nil, fmt.Errorf("duplicate offering ID %s", o.ID)
		}
		if !validCategory(o.Category) {
			return nil, fmt.Errorf("offering %s references unknown category %q", o.ID, o.Category)
		}
		if o.Price < 0 {
			return nil, fmt.Errorf("offering %s has negative price %v", o.ID, o.Price)
		}
		if o.EstimatedDays <= 0 {
			return nil, fmt.Errorf("offering %s has non-positive estimated days %d", o.ID, o.EstimatedDays)
		}
		byID[o.ID] = o
	}

	return &Catalog{
		offerings: append([]Offering(nil), offerings...),
		byID:      byID,
	}, nil
}

// Get returns the offering with the given ID.
func (c *Catalog) Get(id string) (Offering, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// All returns the offerings in catalog order.
func (c *Catalog) All() []Offering {
	return append([]Offering(nil), c.offerings...)
}

// Filter returns offerings matching the category (empty matches all) and a
// case-insensitive substring of the name.
func (c *Catalog) Filter(category Category, query string) []Offering {
	query = strings.ToLower(strings.TrimSpace(query))
	var result []Offering
	for _, o := range c.offerings {
		if category != "" && o.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(o.Name), query) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// DefaultOfferings returns the built-in service catalog.
func DefaultOfferings() []Offering {
	return []Offering{
		{ID: "dev_1", Name: "Landing Page", Price: 500, EstimatedDays: 3, Category: CategoryDevelopment, Description: "Conversion-optimized React landing page."},
		{ID: "dev_2", Name: "SaaS Platform", Price: 4500, EstimatedDays: 21, Category: CategoryDevelopment, Description: "Full-stack application with Auth."},
		{ID: "dev_3", Name: "E-commerce", Price: 3000, EstimatedDays: 14, Category: CategoryDevelopment, Description: "Stripe-integrated online store."},
		{ID: "des_1", Name: "Brand Identity", Price: 1200, EstimatedDays: 7, Category: CategoryDesign, Description: "Logo, typography, and color palette."},
		{ID: "des_2", Name: "UI/UX Prototype", Price: 2000, EstimatedDays: 10, Category: CategoryDesign, Description: "Interactive Figma design system."},
		{ID: "mkt_1", Name: "SEO Strategy", Price: 800, EstimatedDays: 5, Category: CategoryMarketing, Description: "Keyword research and on-page optimization."},
		{ID: "ext_1", Name: "Cloud Hosting", Price: 200, EstimatedDays: 1, Category: CategoryExtras, Description: "AWS/Vercel production setup."},

		{ID: "dev_4", Name: "Multi-page Website", Price: 1200, EstimatedDays: 7, Category: CategoryDevelopment, Description: "Responsive multi-page marketing website in React."},
		{ID: "dev_5", Name: "Blog Platform", Price: 1500, EstimatedDays: 10, Category: CategoryDevelopment, Description: "CMS-powered blog with admin dashboard."},
		{ID: "dev_6", Name: "Portfolio Website", Price: 700, EstimatedDays: 4, Category: CategoryDevelopment, Description: "Personal portfolio with projects and contact form."},
		{ID: "dev_7", Name: "Admin Dashboard", Price: 1800, EstimatedDays: 12, Category: CategoryDevelopment, Description: "Analytics dashboard with charts and role-based access."},
		{ID: "dev_8", Name: "API Development", Price: 1300, EstimatedDays: 8, Category: CategoryDevelopment, Description: "REST/GraphQL API with documentation."},
		{ID: "dev_9", Name: "Authentication System", Price: 900, EstimatedDays: 5, Category: CategoryDevelopment, Description: "JWT/Session-based auth with protected routes."},
		{ID: "dev_10", Name: "Payment Integration", Price: 750, EstimatedDays: 4, Category: CategoryDevelopment, Description: "Stripe or Razorpay payment gateway integration."},
		{ID: "dev_11", Name: "Booking System", Price: 2200, EstimatedDays: 14, Category: CategoryDevelopment, Description: "Appointment/booking web app with calendar integration."},
		{ID: "dev_12", Name: "CRM Lite", Price: 2600, EstimatedDays: 16, Category: CategoryDevelopment, Description: "Lead management and pipeline tracking tool."},
		{ID: "dev_13", Name: "Real-time Chat", Price: 1400, EstimatedDays: 9, Category: CategoryDevelopment, Description: "WebSocket-powered real-time messaging system."},
		{ID: "dev_14", Name: "Landing Page A/B Test", Price: 950, EstimatedDays: 5, Category: CategoryDevelopment, Description: "Two-variant landing page with split testing setup."},
		{ID: "dev_15", Name: "Performance Optimization", Price: 600, EstimatedDays: 3, Category: CategoryDevelopment, Description: "Core Web Vitals and Lighthouse performance improvements."},
		{ID: "dev_16", Name: "Accessibility Upgrade", Price: 650, EstimatedDays: 4, Category: CategoryDevelopment, Description: "WCAG-focused accessibility improvements for existing site."},
		{ID: "dev_17", Name: "Admin Panel for E-commerce", Price: 2000, EstimatedDays: 12, Category: CategoryDevelopment, Description: "Product management, orders, and inventory dashboard."},
		{ID: "dev_18", Name: "Landing Page to Multi-step Funnel", Price: 1100, EstimatedDays: 6, Category: CategoryDevelopment, Description: "Multi-step funnel pages for higher conversion."},
		{ID: "dev_19", Name: "Custom Form Builder", Price: 900, EstimatedDays: 5, Category: CategoryDevelopment, Description: "Drag-and-drop dynamic form creation tool."},
		{ID: "dev_20", Name: "SaaS Billing Module", Price: 1700, EstimatedDays: 10, Category: CategoryDevelopment, Description: "Subscription billing with trials and coupons."},
		{ID: "dev_21", Name: "User Analytics Integration", Price: 500, EstimatedDays: 2, Category: CategoryDevelopment, Description: "Setup for Google Analytics, Plausible, or PostHog."},
		{ID: "dev_22", Name: "Landing Page Template Pack", Price: 800, EstimatedDays: 5, Category: CategoryDevelopment, Description: "Reusable React landing page templates."},
		{ID: "dev_23", Name: "Headless CMS Integration", Price: 1500, EstimatedDays: 9, Category: CategoryDevelopment, Description: "Contentful/Sanity/Strapi integration for dynamic content."},

		{ID: "des_3", Name: "Landing Page UI Design", Price: 900, EstimatedDays: 5, Category: CategoryDesign, Description: "High-conversion landing page UI in Figma."},
		{ID: "des_4", Name: "SaaS Dashboard UI Kit", Price: 1600, EstimatedDays: 9, Category: CategoryDesign, Description: "Component-based design system for SaaS dashboards."},
		{ID: "des_5", Name: "E-commerce UI Design", Price: 1400, EstimatedDays: 8, Category: CategoryDesign, Description: "Storefront, product page, and checkout UI."},
		{ID: "des_6", Name: "Logo Design", Price: 600, EstimatedDays: 3, Category: CategoryDesign, Description: "Primary logo with variations and usage guidelines."},
		{ID: "des_7", Name: "Social Media Kit", Price: 500, EstimatedDays: 3, Category: CategoryDesign, Description: "Editable templates for Instagram, LinkedIn, and Twitter."},
		{ID: "des_8", Name: "Pitch Deck Design", Price: 1000, EstimatedDays: 6, Category: CategoryDesign, Description: "Investor-ready slide deck design."},
		{ID: "des_9", Name: "Design System Tokens", Price: 750, EstimatedDays: 4, Category: CategoryDesign, Description: "Colors, typography, spacing, and components tokens."},
		{ID: "des_10", Name: "Brand Style Guide", Price: 1300, EstimatedDays: 7, Category: CategoryDesign, Description: "PDF brand book with usage rules and examples."},
		{ID: "des_11", Name: "Email Template Design", Price: 550, EstimatedDays: 3, Category: CategoryDesign, Description: "Responsive newsletter and transactional email designs."},
		{ID: "des_12", Name: "Onboarding Flow UX", Price: 950, EstimatedDays: 5, Category: CategoryDesign, Description: "Frictionless onboarding journey for web apps."},
		{ID: "des_13", Name: "Mobile-first UI Layouts", Price: 800, EstimatedDays: 5, Category: CategoryDesign, Description: "Responsive mobile-first page layouts."},
		{ID: "des_14", Name: "Wireframe Package", Price: 650, EstimatedDays: 4, Category: CategoryDesign, Description: "Low-fidelity wireframes for up to 5 key pages."},

		{ID: "mkt_2", Name: "Landing Page Copywriting", Price: 600, EstimatedDays: 3, Category: CategoryMarketing, Description: "Conversion-focused copy for hero, features, and CTA."},
		{ID: "mkt_3", Name: "Email Welcome Sequence", Price: 700, EstimatedDays: 4, Category: CategoryMarketing, Description: "3-5 part email sequence for new signups."},
		{ID: "mkt_4", Name: "SaaS Launch Campaign", Price: 2200, EstimatedDays: 14, Category: CategoryMarketing, Description: "Launch strategy across email, social, and landing pages."},
		{ID: "mkt_5", Name: "Content Strategy Plan", Price: 900, EstimatedDays: 5, Category: CategoryMarketing, Description: "90-day blog and content roadmap."},
		{ID: "mkt_6", Name: "Conversion Audit", Price: 650, EstimatedDays: 3, Category: CategoryMarketing, Description: "Audit of funnel, CTAs, and user journey."},
		{ID: "mkt_7", Name: "Ad Landing Page Optimization", Price: 750, EstimatedDays: 4, Category: CategoryMarketing, Description: "Optimization of ad-specific landing pages."},
		{ID: "mkt_8", Name: "Social Media Launch Kit", Price: 800, EstimatedDays: 5, Category: CategoryMarketing, Description: "Posts, captions, and assets for new product launch."},
		{ID: "mkt_9", Name: "E-commerce CRO Package", Price: 1200, EstimatedDays: 7, Category: CategoryMarketing, Description: "Improve cart, checkout, and upsell flows."},
		{ID: "mkt_10", Name: "SEO Content Briefs", Price: 500, EstimatedDays: 3, Category: CategoryMarketing, Description: "SEO-optimized content briefs for writers."},
		{ID: "mkt_11", Name: "Brand Positioning Workshop", Price: 1000, EstimatedDays: 5, Category: CategoryMarketing, Description: "Clarify brand message, audience, and USP."},

		{ID: "ext_2", Name: "Monthly Maintenance", Price: 300, EstimatedDays: 1, Category: CategoryExtras, Description: "Bug fixes, minor updates, and uptime checks."},
		{ID: "ext_3", Name: "Analytics Dashboard Setup", Price: 400, EstimatedDays: 2, Category: CategoryExtras, Description: "Custom analytics dashboard for KPIs."},
		{ID: "ext_4", Name: "CI/CD Pipeline Setup", Price: 600, EstimatedDays: 3, Category: CategoryExtras, Description: "Automated deployments with GitHub Actions."},
		{ID: "ext_5", Name: "Database Optimization", Price: 700, EstimatedDays: 4, Category: CategoryExtras, Description: "Indexing, query optimization, and backups."},
		{ID: "ext_6", Name: "Migrations & Refactors", Price: 900, EstimatedDays: 5, Category: CategoryExtras, Description: "Codebase refactor or tech stack migration support."},
		{ID: "ext_7", Name: "Technical Consultation", Price: 250, EstimatedDays: 1, Category: CategoryExtras, Description: "90-minute strategy and architecture consulting call."},
		{ID: "ext_8", Name: "Priority Support Add-on", Price: 350, EstimatedDays: 1, Category: CategoryExtras, Description: "Priority issue resolution within agreed SLA."},
		{ID: "ext_9", Name: "Backup & Security Setup", Price: 500, EstimatedDays: 3, Category: CategoryExtras, Description: "Automated backups, SSL, and security hardening."},
		{ID: "ext_10", Name: "Staging Environment Setup", Price: 300, EstimatedDays: 2, Category: CategoryExtras, Description: "Separate staging environment for QA and approvals."},
		{ID: "ext_11", Name: "Performance Monitoring Setup", Price: 350, EstimatedDays: 2, Category: CategoryExtras, Description: "Error tracking and performance monitoring tools integration."},
	}
}

// DefaultCatalog builds the catalog from the built-in offering list.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultOfferings())
}
