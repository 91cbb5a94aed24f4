package routes

import (
	public_handlers "groupeatlas.com/handlers/public"
	"groupeatlas.com/models"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
)

// registerPublicResource branche la vue publique d'une ressource: liste
// filtrée sur la visibilité et, si withDetail, consultation par slug ou id.
func registerPublicResource[T any](api fiber.Router, path string, cfg services.ResourceConfig, withDetail bool) {
	h := public_handlers.NewResourceHandler[T](services.NewResourceService[T](cfg), cfg.Label)

	api.Get("/"+path, h.List)
	if withDetail {
		api.Get("/"+path+"/:key", h.GetByKey)
	}
}

// registerPublicRoutes définit les routes /api consommées par le site public.
func registerPublicRoutes(api fiber.Router) {
	// Les chemins à segment fixe ("news/categories") précèdent les chemins
	// paramétrés ("news/:key") pour ne pas être capturés par ces derniers.
	registerPublicResource[models.CarouselSlide](api, "carousel", carouselConfig, false)
	registerPublicResource[models.Entity](api, "entities", entityConfig, true)
	registerPublicResource[models.NewsCategory](api, "news/categories", newsCategoryConfig, false)
	registerPublicResource[models.NewsArticle](api, "news", newsConfig, true)
	registerPublicResource[models.PressRelease](api, "press-releases", pressReleaseConfig, true)
	registerPublicResource[models.JobOffer](api, "jobs", jobConfig, true)
	registerPublicResource[models.PartnerCategory](api, "partners/categories", partnerCategoryConfig, false)
	registerPublicResource[models.Partner](api, "partners", partnerConfig, false)
	registerPublicResource[models.Testimonial](api, "testimonials", testimonialConfig, false)
	registerPublicResource[models.FAQCategory](api, "faq/categories", faqCategoryConfig, false)
	registerPublicResource[models.FAQItem](api, "faq", faqConfig, false)
	registerPublicResource[models.Service](api, "services", serviceConfig, false)
	registerPublicResource[models.ProductCategory](api, "products/categories", productCategoryConfig, false)
	registerPublicResource[models.Product](api, "products", productConfig, true)
	registerPublicResource[models.Project](api, "projects", projectConfig, true)
	registerPublicResource[models.PageContent](api, "pages", pageConfig, true)
	registerPublicResource[models.SocialLink](api, "social-links", socialLinkConfig, false)

	// --- Configuration publique du site ---
	settingsHandler := public_handlers.NewSettingsHandler()
	api.Get("/settings", settingsHandler.GetSiteSetting)
	api.Get("/contact-info", settingsHandler.GetContactInfo)

	// --- Formulaire de contact ---
	contactHandler := public_handlers.NewContactHandler()
	api.Post("/contact", contactHandler.Submit)
}
