package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/api/handler/router"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/landing"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup"
	"github.com/vfg2006/coldinfra-dashboard/pkg/middleware"
)

type sessionScoped []func(http.Handler) http.Handler

func scoped(resolver middleware.SessionResolver) sessionScoped {
	return sessionScoped{middleware.SessionMiddleware(resolver)}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Landing(service landing.Lander) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/landing",
			Method:  http.MethodGet,
			Handler: GetLanding(service),
		},
		{
			Path:    "/v1/landing/:id",
			Method:  http.MethodGet,
			Handler: GetLandingSection(service),
		},
	}
}

func Sessions(manager session.Manager, ttl time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(manager, ttl),
		},
	}
}

func Notifications(center NotificationCenter, resolver middleware.SessionResolver, allowedOrigins []string) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(center),
			Middlewares: auth,
		},
		{
			Path:        "/v1/notifications/:id",
			Method:      http.MethodDelete,
			Handler:     DismissNotification(center),
			Middlewares: auth,
		},
		{
			Path:        "/v1/notifications/stream",
			Method:      http.MethodGet,
			Handler:     StreamNotifications(center, allowedOrigins),
			Middlewares: auth,
		},
	}
}

func Signup(service signup.Signer, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:    "/v1/beta/options",
			Method:  http.MethodGet,
			Handler: GetBetaOptions(),
		},
		{
			Path:        "/v1/beta/form",
			Method:      http.MethodGet,
			Handler:     GetBetaForm(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/beta/form",
			Method:      http.MethodPut,
			Handler:     UpdateBetaForm(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/beta/submit",
			Method:      http.MethodPost,
			Handler:     SubmitBetaForm(service),
			Middlewares: auth,
		},
	}
}

func Dashboard(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/dashboard/nav",
			Method:      http.MethodGet,
			Handler:     GetNavigation(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/dashboard/tab",
			Method:      http.MethodGet,
			Handler:     GetActiveTab(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/dashboard/tab",
			Method:      http.MethodPut,
			Handler:     SetActiveTab(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/dashboard/panel",
			Method:      http.MethodGet,
			Handler:     RenderPanel(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/dashboard/panel/:tab",
			Method:      http.MethodGet,
			Handler:     RenderPanel(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: auth,
		},
	}
}

func Brands(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/brands",
			Method:      http.MethodPost,
			Handler:     AddBrand(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/brands/export",
			Method:      http.MethodGet,
			Handler:     ExportBrandsCSV(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/brands/status",
			Method:      http.MethodPatch,
			Handler:     UpdateBrandStatus(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/brands/date-range",
			Method:      http.MethodPut,
			Handler:     SetBrandDateRange(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/brands/setup",
			Method:      http.MethodPost,
			Handler:     RecommendBrandSetup(service),
			Middlewares: auth,
		},
	}
}

func Domains(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/domains",
			Method:      http.MethodGet,
			Handler:     ListDomains(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/domains/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleDomain(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/domains/select-all",
			Method:      http.MethodPost,
			Handler:     SelectAllDomains(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/domains/setup",
			Method:      http.MethodPost,
			Handler:     SetupDomains(service),
			Middlewares: auth,
		},
	}
}

func Inboxes(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/inboxes",
			Method:      http.MethodGet,
			Handler:     ListInboxes(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/inboxes/health",
			Method:      http.MethodGet,
			Handler:     GetInboxHealth(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/inboxes/health/selected",
			Method:      http.MethodPut,
			Handler:     SelectInbox(service),
			Middlewares: auth,
		},
	}
}

func Leads(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/leads/generated",
			Method:      http.MethodGet,
			Handler:     ListGeneratedLeads(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/leads/finder",
			Method:      http.MethodGet,
			Handler:     ListFinderLeads(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/leads/finder/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleLead(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/leads/finder/cart",
			Method:      http.MethodPost,
			Handler:     AddLeadsToCart(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/leads/finder/upload",
			Method:      http.MethodPost,
			Handler:     UploadLeads(service),
			Middlewares: auth,
		},
	}
}

func Campaigns(service dashboard.Dashboarder, resolver middleware.SessionResolver) []router.Route {
	auth := scoped(resolver)

	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns/workflow",
			Method:      http.MethodGet,
			Handler:     GetWorkflow(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns/workflow",
			Method:      http.MethodPut,
			Handler:     SaveWorkflow(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns/workflow/steps",
			Method:      http.MethodPost,
			Handler:     AddWorkflowStep(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns/workflow/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleWorkflowStep(service),
			Middlewares: auth,
		},
		{
			Path:        "/v1/campaigns/workflow/generate",
			Method:      http.MethodPost,
			Handler:     GenerateEmail(service),
			Middlewares: auth,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
