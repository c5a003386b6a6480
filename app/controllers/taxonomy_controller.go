package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/envaran/EnvaranMatch/internal/pkg/taxonomy"
)

var taxonomyService *taxonomy.Service

// InitializeTaxonomyController wires the caste taxonomy resolver.
func InitializeTaxonomyController(svc *taxonomy.Service) {
	taxonomyService = svc
}

// HandleTaxonomyCastes returns all caste names in sorted order.
func HandleTaxonomyCastes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"castes": taxonomyService.Castes(),
	})
}

// HandleTaxonomySubCastes returns the sub-caste options for one caste.
// Unknown castes get the NILL sentinel so selectors are never empty.
func HandleTaxonomySubCastes(c *fiber.Ctx) error {
	caste := c.Params("caste")

	return c.JSON(fiber.Map{
		"caste":     caste,
		"known":     taxonomyService.IsValid(caste),
		"subCastes": taxonomyService.SubCastes(caste),
	})
}
