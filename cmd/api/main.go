package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffhive/erp-backend-go/internal/config"
	appHTTP "github.com/staffhive/erp-backend-go/internal/handler/http"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
	"github.com/staffhive/erp-backend-go/internal/pkg/jwt"
	"github.com/staffhive/erp-backend-go/internal/pkg/storage"
	"github.com/staffhive/erp-backend-go/internal/repository/postgresql"
	auditService "github.com/staffhive/erp-backend-go/internal/service/audit"
	authService "github.com/staffhive/erp-backend-go/internal/service/auth"
	candidateService "github.com/staffhive/erp-backend-go/internal/service/candidate"
	clientService "github.com/staffhive/erp-backend-go/internal/service/client"
	employeeService "github.com/staffhive/erp-backend-go/internal/service/employee"
	"github.com/staffhive/erp-backend-go/internal/service/file"
	leaveService "github.com/staffhive/erp-backend-go/internal/service/leave"
	masterService "github.com/staffhive/erp-backend-go/internal/service/master"
	salesService "github.com/staffhive/erp-backend-go/internal/service/sales"
	vendorService "github.com/staffhive/erp-backend-go/internal/service/vendor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	childRepo := postgresql.NewChildRepository(db)
	lookupRepo := postgresql.NewLookupRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	vendorRepo := postgresql.NewVendorRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	auditRepo := postgresql.NewAuditLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, childRepo, lookupRepo, balanceRepo, auditSvc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, leaveTypeRepo, balanceRepo, employeeRepo, auditSvc)
	masterSvc := masterService.NewMasterService(lookupRepo, auditSvc)
	clientSvc := clientService.NewClientService(clientRepo, auditSvc)
	vendorSvc := vendorService.NewVendorService(vendorRepo, auditSvc)
	candidateSvc := candidateService.NewCandidateService(candidateRepo, fileSvc, auditSvc)
	salesSvc := salesService.NewSalesService(db, invoiceRepo, clientRepo, auditSvc)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewLeaveHandler(leaveSvc, fileSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewClientHandler(clientSvc),
		appHTTP.NewVendorHandler(vendorSvc),
		appHTTP.NewCandidateHandler(candidateSvc),
		appHTTP.NewSalesHandler(salesSvc),
		appHTTP.NewAuditHandler(auditSvc),
		cfg.Storage.BasePath,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error: ", err)
	}
}
