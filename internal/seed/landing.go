package seed

import "github.com/vfg2006/coldinfra-dashboard/internal/domain"

// Alvos dos botões da landing page
const (
	TargetBeta = "#beta"
	TargetDemo = "#demo"
)

func Landing() domain.LandingPage {
	return domain.LandingPage{
		Sections: []domain.LandingSection{
			{
				ID:          "hero",
				Badge:       "Early Access Program",
				Headline:    "Automate Your Cold Email Infrastructure. Scale Without Limits.",
				Subheadline: "From domain warm-up to inbox rotation and deliverability monitoring, we handle the backend so you can focus on closing deals.",
				Actions: []domain.CallToAction{
					{Label: "Join the Beta", Target: TargetBeta},
					{Label: "Book a Demo", Target: TargetDemo},
				},
			},
			{
				ID:          "problem",
				Headline:    "Running Cold Email at Scale Is Painful.",
				Subheadline: "We've been there, and we're building the tool we wish we had.",
				Items: []domain.SectionItem{
					{Title: "Managing 20+ inboxes manually"},
					{Title: "Domains getting blacklisted"},
					{Title: "Low deliverability killing campaigns"},
					{Title: "No visibility on what's going wrong"},
					{Title: "Burnout from technical setup"},
				},
			},
			{
				ID:       "solution",
				Badge:    "Solution",
				Headline: "A Fully-Automated Cold Email Engine Built for Performance",
				Items: []domain.SectionItem{
					{Title: "Auto Domain Setup", Description: "Get domains, configure DNS, SPF/DKIM/DMARC, all automated."},
					{Title: "Smart Email Warm-Up", Description: "Human-like warm-up behavior to build trust with inbox providers."},
					{Title: "Inbox Rotation & Load Balancing", Description: "Maximize sending capacity without hurting deliverability."},
					{Title: "Deliverability Health Monitoring", Description: "Get alerts before your emails hit spam."},
					{Title: "Live Campaign Tracking", Description: "Manage and monitor everything from a single dashboard."},
				},
			},
			{
				ID:          "persona",
				Badge:       "For Whom",
				Headline:    "Built for Outreach Teams of Every Size",
				Subheadline: "From single-person operations to agencies managing hundreds of campaigns, our platform scales with your needs.",
				Items: []domain.SectionItem{
					{Title: "Lead Gen Agencies", Description: "Focus on results, not on backend tech."},
					{Title: "Course Creators & Coaches", Description: "Automate outreach without burning domains."},
					{Title: "SaaS Founders", Description: "Scale outreach to hundreds without hurting brand reputation."},
					{Title: "Freelancers & SDRs", Description: "Start strong without tech headaches."},
				},
			},
			{
				ID:       "beta",
				Badge:    "Early Access",
				Headline: "Be Part of the Founding Circle",
				Items: []domain.SectionItem{
					{Title: "Get early access to a powerful email infra engine"},
					{Title: "Influence the product roadmap"},
					{Title: "Lifetime deal & priority support for early adopters"},
					{Title: "Exclusive Slack/Discord community access"},
					{Title: "Free migration/setup assistance"},
				},
			},
			{
				ID:          "testimonial",
				Badge:       "Testimonials",
				Headline:    "What Early Users Say",
				Subheadline: "Testimonials from early users will appear here. Be among the first to test our platform and share your experience.",
			},
			{
				ID:          "final-cta",
				Headline:    "Cold Email Scaling Shouldn't Be This Hard.",
				Subheadline: "Join the early adopters transforming how outreach is done, with automation, reliability, and peace of mind.",
				Actions: []domain.CallToAction{
					{Label: "Join the Beta Waitlist", Target: TargetBeta},
					{Label: "Book a Demo", Target: TargetDemo},
				},
			},
		},
	}
}
