package usecase

import (
	"go.uber.org/fx"

	"github.com/erpre/backoffice/internal/config"
	"github.com/erpre/backoffice/internal/domain/repository"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewEmployeeUseCase,
	NewCatalogUseCase,
	NewPriceUseCase,
	NewOrderUseCase,
	NewReportUseCase,
)

func newAuthUseCase(employees repository.EmployeeRepository, hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy, blacklist pkgAuth.TokenBlacklist, cfg *config.Config) *AuthUseCase {
	return NewAuthUseCase(employees, hasher, strategy, blacklist, cfg.TokenTTL)
}
