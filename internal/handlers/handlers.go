// Package handlers is the HTTP surface of the register: the selling screen,
// the admin panel, and the receipt history all talk to these endpoints.
package handlers

import (
	"errors"
	"net/http"

	"go-pos-register/internal/cart"
	"go-pos-register/internal/catalog"
	"go-pos-register/internal/ledger"
	"go-pos-register/internal/logging"
	"go-pos-register/internal/models"
	"go-pos-register/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers carries the injected stores. One register cart per process: this
// is a single-terminal system.
type Handlers struct {
	Catalog  *catalog.Store
	Ledger   *ledger.Ledger
	Sessions *session.Manager
	Cart     *cart.Cart

	// AllowAdminRegistration mirrors the config flag; the register route is
	// only mounted when it is set, but the handler double-checks.
	AllowAdminRegistration bool
}

func New(cat *catalog.Store, led *ledger.Ledger, sessions *session.Manager) *Handlers {
	return &Handlers{
		Catalog:  cat,
		Ledger:   led,
		Sessions: sessions,
		Cart:     cart.New(),
	}
}

// fail maps errors to responses: ValidationError messages go to the operator
// verbatim as a 400, anything else is a storage fault surfaced as a generic
// 500.
func fail(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}

	logging.L().Error("storage failure",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
}
