package services

import (
	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
)

type CatalogServiceInterface interface {
	Query(filters repositories.CatalogFilters) []db_models.CatalogItem
	All() []db_models.CatalogItem
}

type CatalogService struct {
	catalog repositories.CatalogRepository
}

func NewCatalogService(catalog repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalog: catalog}
}

func (c *CatalogService) Query(filters repositories.CatalogFilters) []db_models.CatalogItem {
	return c.catalog.Query(filters)
}

func (c *CatalogService) All() []db_models.CatalogItem {
	return c.catalog.Items()
}
