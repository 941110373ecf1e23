package main

import (
	"fmt"
	"net/http"

	"github.com/reestr-app/reestr-backend-go/internal/config"
	appHTTP "github.com/reestr-app/reestr-backend-go/internal/handler/http"
	"github.com/reestr-app/reestr-backend-go/internal/pkg/database"
	"github.com/reestr-app/reestr-backend-go/internal/pkg/jwt"
	"github.com/reestr-app/reestr-backend-go/internal/pkg/oauth"
	"github.com/reestr-app/reestr-backend-go/internal/repository/postgresql"
	authService "github.com/reestr-app/reestr-backend-go/internal/service/auth"
	companyService "github.com/reestr-app/reestr-backend-go/internal/service/company"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	companySvc := companyService.NewCompanyService(companyRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)

	router := appHTTP.NewRouter(cfg, jwtSvc, authHandler, companyHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
