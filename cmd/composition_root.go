package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	"ecomove/internal/adapters/in/http"
	"ecomove/internal/adapters/out/auth"
	"ecomove/internal/adapters/out/postgres"
	"ecomove/internal/core/application/usecases/commands"
	"ecomove/internal/core/application/usecases/queries"
	"ecomove/internal/core/ports"
	"ecomove/internal/jobs"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     *postgres.GormUnitOfWorkFactory
	authRepository *auth.GormAuthRepository
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		authRepository: auth.NewGormAuthRepository(gormDB, auth.Config{
			Secret:          config.JWTSecret,
			AccessTokenTTL:  config.AccessTokenTTL,
			RefreshTokenTTL: config.RefreshTokenTTL,
		}),
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) AuthRepository() ports.AuthRepository {
	return c.authRepository
}

func (c *CompositionRoot) loanUoWFactory() commands.LoanUoWFactory {
	return postgres.NewLoanUoWFactory(c.uowFactory)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.authRepository)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.authRepository)
}

func (c *CompositionRoot) CreateCreateLoanCommandHandler() commands.CreateLoanCommandHandler {
	return commands.NewCreateLoanCommandHandler(c.loanUoWFactory())
}

func (c *CompositionRoot) CreateCompleteLoanCommandHandler() commands.CompleteLoanCommandHandler {
	return commands.NewCompleteLoanCommandHandler(c.loanUoWFactory())
}

func (c *CompositionRoot) CreateCancelLoanCommandHandler() commands.CancelLoanCommandHandler {
	return commands.NewCancelLoanCommandHandler(c.loanUoWFactory())
}

func (c *CompositionRoot) CreateExtendLoanCommandHandler() commands.ExtendLoanCommandHandler {
	return commands.NewExtendLoanCommandHandler(c.loanUoWFactory())
}

func (c *CompositionRoot) CreateMarkOverdueLoansCommandHandler() commands.MarkOverdueLoansCommandHandler {
	return commands.NewMarkOverdueLoansCommandHandler(c.loanUoWFactory())
}

func (c *CompositionRoot) CreateFindAvailableTransportsQueryHandler() queries.FindAvailableTransportsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewFindAvailableTransportsQueryHandler(
		uow.TransportRepository(), uow.StationRepository())
}

func (c *CompositionRoot) CreateGetUserLoansQueryHandler() queries.GetUserLoansQueryHandler {
	return queries.NewGetUserLoansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateLoginUserCommandHandler(),
		c.AuthRepository(),
		c.CreateCreateLoanCommandHandler(),
		c.CreateCompleteLoanCommandHandler(),
		c.CreateCancelLoanCommandHandler(),
		c.CreateExtendLoanCommandHandler(),
		c.CreateFindAvailableTransportsQueryHandler(),
		c.CreateGetUserLoansQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMarkOverdueLoansCommandHandler(), c.logger)
}
