package routes

import "groupeatlas.com/services"

// Configuration des ressources du contrat CRUD générique. Chaque entrée fixe
// la colonne de visibilité, le tri, les filtres de requête autorisés et la
// présence d'un slug; les routes admin et publiques s'appuient dessus.
var (
	carouselConfig = services.ResourceConfig{
		Label:            "Diapositive",
		VisibilityColumn: "is_active",
	}

	entityConfig = services.ResourceConfig{
		Label:            "Filiale",
		VisibilityColumn: "is_active",
		HasSlug:          true,
	}

	newsCategoryConfig = services.ResourceConfig{
		Label:            "Catégorie d'actualités",
		VisibilityColumn: "is_active",
	}

	newsConfig = services.ResourceConfig{
		Label:              "Actualité",
		VisibilityColumn:   "is_published",
		RequirePublishedAt: true,
		OrderClause:        "published_at desc, created_at desc",
		HasSlug:            true,
		AllowedFilters:     map[string]string{"category": "category_id"},
	}

	pressReleaseConfig = services.ResourceConfig{
		Label:              "Communiqué",
		VisibilityColumn:   "is_published",
		RequirePublishedAt: true,
		OrderClause:        "published_at desc, created_at desc",
		HasSlug:            true,
	}

	jobConfig = services.ResourceConfig{
		Label:            "Offre d'emploi",
		VisibilityColumn: "is_active",
		AllowedFilters:   map[string]string{"entity": "entity_id"},
	}

	partnerCategoryConfig = services.ResourceConfig{
		Label:            "Catégorie de partenaires",
		VisibilityColumn: "is_active",
	}

	partnerConfig = services.ResourceConfig{
		Label:            "Partenaire",
		VisibilityColumn: "is_active",
		AllowedFilters:   map[string]string{"category": "category_id"},
	}

	testimonialConfig = services.ResourceConfig{
		Label:            "Témoignage",
		VisibilityColumn: "is_active",
	}

	faqCategoryConfig = services.ResourceConfig{
		Label:            "Rubrique FAQ",
		VisibilityColumn: "is_active",
	}

	faqConfig = services.ResourceConfig{
		Label:            "Question",
		VisibilityColumn: "is_active",
		AllowedFilters:   map[string]string{"category": "category_id"},
	}

	serviceConfig = services.ResourceConfig{
		Label:            "Prestation",
		VisibilityColumn: "is_active",
		AllowedFilters:   map[string]string{"entity": "entity_id"},
	}

	productCategoryConfig = services.ResourceConfig{
		Label:            "Catégorie de produits",
		VisibilityColumn: "is_active",
		HasSlug:          true,
	}

	productConfig = services.ResourceConfig{
		Label:            "Produit",
		VisibilityColumn: "is_active",
		HasSlug:          true,
		AllowedFilters:   map[string]string{"category": "category_id"},
	}

	projectConfig = services.ResourceConfig{
		Label:            "Projet",
		VisibilityColumn: "is_active",
		HasSlug:          true,
		AllowedFilters:   map[string]string{"entity": "entity_id"},
	}

	pageConfig = services.ResourceConfig{
		Label:              "Page",
		VisibilityColumn:   "is_published",
		RequirePublishedAt: true,
		HasSlug:            true,
	}

	socialLinkConfig = services.ResourceConfig{
		Label:            "Lien social",
		VisibilityColumn: "is_active",
	}
)
