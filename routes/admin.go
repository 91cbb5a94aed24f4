package routes

import (
	admin_handlers "groupeatlas.com/handlers/admin"
	"groupeatlas.com/middlewares"
	"groupeatlas.com/models"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
)

// registerAdminResource branche le CRUD complet d'une ressource sous le
// groupe admin: liste, consultation, création, remplacement, suppression.
func registerAdminResource[T any](group fiber.Router, path string, cfg services.ResourceConfig) {
	h := admin_handlers.NewResourceHandler[T](services.NewResourceService[T](cfg), cfg.Label)

	group.Get("/"+path, h.List)
	group.Get("/"+path+"/:id", h.GetByID)
	group.Post("/"+path, h.Create)
	group.Put("/"+path+"/:id", h.Update)
	group.Delete("/"+path+"/:id", h.Delete)
}

// registerAdminRoutes définit les routes /api/admin. Tout est protégé par le
// jeton d'administration, à l'exception de la connexion.
func registerAdminRoutes(api fiber.Router) {
	authHandler := admin_handlers.NewAuthHandler()

	// Connexion: seule route admin accessible sans jeton.
	api.Post("/admin/login", authHandler.Login)

	admin := api.Group("/admin", middlewares.AuthMiddleware)

	// --- Ressources du contrat CRUD générique ---
	// Les chemins à segment fixe ("news/categories") sont enregistrés avant
	// les chemins paramétrés correspondants.
	registerAdminResource[models.CarouselSlide](admin, "carousel", carouselConfig)
	registerAdminResource[models.Entity](admin, "entities", entityConfig)
	registerAdminResource[models.NewsCategory](admin, "news/categories", newsCategoryConfig)
	registerAdminResource[models.NewsArticle](admin, "news", newsConfig)
	registerAdminResource[models.PressRelease](admin, "press-releases", pressReleaseConfig)
	registerAdminResource[models.JobOffer](admin, "jobs", jobConfig)
	registerAdminResource[models.PartnerCategory](admin, "partners/categories", partnerCategoryConfig)
	registerAdminResource[models.Partner](admin, "partners", partnerConfig)
	registerAdminResource[models.Testimonial](admin, "testimonials", testimonialConfig)
	registerAdminResource[models.FAQCategory](admin, "faq/categories", faqCategoryConfig)
	registerAdminResource[models.FAQItem](admin, "faq", faqConfig)
	registerAdminResource[models.Service](admin, "services", serviceConfig)
	registerAdminResource[models.ProductCategory](admin, "products/categories", productCategoryConfig)
	registerAdminResource[models.Product](admin, "products", productConfig)
	registerAdminResource[models.Project](admin, "projects", projectConfig)
	registerAdminResource[models.PageContent](admin, "pages", pageConfig)
	registerAdminResource[models.SocialLink](admin, "social-links", socialLinkConfig)

	// --- Configuration du site (singletons) ---
	settingsHandler := admin_handlers.NewSettingsHandler()
	admin.Get("/settings", settingsHandler.GetSiteSetting)
	admin.Put("/settings", settingsHandler.UpdateSiteSetting)
	admin.Get("/contact-info", settingsHandler.GetContactInfo)
	admin.Put("/contact-info", settingsHandler.UpdateContactInfo)

	// --- Boîte de réception du formulaire de contact ---
	messageHandler := admin_handlers.NewMessageHandler()
	admin.Get("/messages", messageHandler.List)
	admin.Delete("/messages/:id", messageHandler.Delete)

	// --- Téléversement d'images ---
	uploadHandler := admin_handlers.NewUploadHandler()
	admin.Post("/upload", uploadHandler.Upload)
}
