// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductArchived = "product.archived"
	KeyProductRestored = "product.restored"
	KeyProductNotFound = "product.not_found"

	// Queries
	KeyCriteriaInvalid = "criteria.invalid"

	// Export
	KeyExportEmpty = "export.empty"
)
