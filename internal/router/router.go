package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"swachvillage/internal/auth"
	"swachvillage/internal/config"
	"swachvillage/internal/handler"
	"swachvillage/internal/model"
)

// Register wires routes and middleware. Role gating is composed explicitly
// here: the token guard verifies the bearer token, RequireRoles narrows the
// route group to the roles that may call it.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	businessHandler *handler.BusinessHandler,
	productHandler *handler.ProductHandler,
	feedbackHandler *handler.FeedbackHandler,
	consumerHandler *handler.ConsumerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Swach Village API is running",
		})
	})

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify-token", authHandler.VerifyToken)
	api.GET("/consumer/businesses", consumerHandler.Businesses)

	guard := auth.Guard(jwtService)

	// Business routes (require business role)
	business := api.Group("/business", guard, auth.RequireRoles(model.RoleBusiness))
	business.POST("/certification", businessHandler.SubmitCertification)
	business.GET("/certification", businessHandler.GetCertification)
	business.GET("/dashboard", businessHandler.Dashboard)
	business.GET("/feedback", businessHandler.Feedback)
	business.GET("/profile", businessHandler.Profile)

	// Product routes (role depends on the operation)
	products := api.Group("/products", guard)
	products.POST("/verify", productHandler.Verify, auth.RequireRoles(model.RoleConsumer))
	products.GET("/details", productHandler.Details, auth.RequireRoles(model.RoleConsumer))
	products.POST("/register", productHandler.Register, auth.RequireRoles(model.RoleBusiness))

	// Feedback routes
	feedback := api.Group("/feedback", guard)
	feedback.POST("/submit", feedbackHandler.Submit, auth.RequireRoles(model.RoleConsumer))
	feedback.POST("/upvote/:id", feedbackHandler.Upvote, auth.RequireRoles(model.RoleConsumer))
	feedback.GET("/get/:product_id", feedbackHandler.GetForProduct,
		auth.RequireRoles(model.RoleConsumer, model.RoleBusiness))

	// Consumer routes (require consumer role)
	consumer := api.Group("/consumer", guard, auth.RequireRoles(model.RoleConsumer))
	consumer.GET("/profile", consumerHandler.Profile)
	consumer.GET("/feedback", consumerHandler.MyFeedback)
	consumer.POST("/verify-product", consumerHandler.VerifyProduct)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
