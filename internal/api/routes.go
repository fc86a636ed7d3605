package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/syntaxkim/project1/internal/api/handlers"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/internal/config"
	"github.com/syntaxkim/project1/internal/repository"
	"github.com/syntaxkim/project1/internal/service"
	"github.com/syntaxkim/project1/internal/weather"
	"github.com/syntaxkim/project1/pkg/utils/logger"
	"github.com/syntaxkim/project1/pkg/utils/response"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

// SetupRoutes configures the routes for the app
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) error {
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)

	audit, err := logger.New(db)
	if err != nil {
		return err
	}

	authService := service.NewAuthService(userRepo, audit)
	sessionService := service.NewSessionService(redisClient)
	locationService := service.NewLocationService(locationRepo)
	checkinService := service.NewCheckinService(checkinRepo, locationRepo)
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	weatherService := service.NewWeatherService(weatherClient, redisClient)

	authHandler := handlers.NewAuthHandler(authService, sessionService)
	pageHandler := handlers.NewPageHandler(locationService)
	locationHandler := handlers.NewLocationHandler(locationService, checkinService, weatherService)
	userHandler := handlers.NewUserHandler(userRepo, checkinService)
	apiHandler := handlers.NewAPIHandler(locationService)

	// Every route sees the session, if any; RequireAuth guards the
	// authenticated-only ones.
	e.Use(middleware.SessionMiddleware(sessionService))

	e.HTTPErrorHandler = httpErrorHandler

	// Pages
	e.GET("/", pageHandler.Index)
	e.POST("/", pageHandler.Index)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/welcome", authHandler.Welcome)
	e.GET("/signin", authHandler.SigninPage)
	e.POST("/signin", authHandler.Signin)
	e.GET("/signout", authHandler.Signout)
	e.POST("/search", pageHandler.Search)
	e.GET("/locations/:id", locationHandler.LocationPage)
	e.POST("/locations/:id", locationHandler.AddCheckin, middleware.RequireAuth())
	e.GET("/user/:name", userHandler.UserPage)
	e.GET("/user/:name/comment", userHandler.UserComments)
	e.GET("/user/:name/verification", authHandler.VerificationPage, middleware.RequireAuth())
	e.POST("/user/:name/verification", authHandler.Verify, middleware.RequireAuth())
	e.POST("/updatepassword", authHandler.UpdatePassword, middleware.RequireAuth())
	e.POST("/delete", locationHandler.DeleteCheckin, middleware.RequireAuth())

	// JSON API
	apiGroup := e.Group("/api")
	apiGroup.GET("", apiHandler.Index)
	apiGroup.GET("/locations/:zipcode", apiHandler.LocationByZipcode)
	apiGroup.GET("/locations/:zipcode/:field", apiHandler.LocationField)

	return nil
}

// httpErrorHandler renders unknown routes and unhandled errors: JSON for the
// /api surface, the error page for everything else.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if status == http.StatusNotFound {
			message = "Page not found."
		}
	}

	if status == http.StatusInternalServerError {
		zaplogger.Error("request failed", zaplogger.Fields{
			"uri":   c.Request().RequestURI,
			"error": err.Error(),
		})
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api") {
		_ = response.ErrorJSON(c, status, message)
		return
	}
	_ = response.ErrorPage(c, status, message)
}
