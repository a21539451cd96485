// Package service contains the catalog business logic: input validation,
// orchestration of the pagination engine and the record store, and typed
// outcomes for the transport layer.
package service

import (
	"github.com/ncobase/catalog/data"
	"github.com/ncobase/catalog/logger"
)

// Service aggregates all business logic services.
type Service struct {
	Item *ItemService
}

// NewService creates a service instance with all sub-services initialized.
func NewService(d *data.Data, logger *logger.Logger) *Service {
	return &Service{
		Item: NewItemService(d, logger),
	}
}
