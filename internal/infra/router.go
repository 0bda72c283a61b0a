package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-directory/docs" // swagger spec registration
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/handlers"
	"github.com/umalmyha/customer-directory/internal/middleware"
	"github.com/umalmyha/customer-directory/internal/service"
	"github.com/umalmyha/customer-directory/internal/validation"
)

// Router builds echo application serving customers API
func Router(customerSvc service.CustomerService, v *validation.Validator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.Echo(v)
	e.HTTPErrorHandler = HTTPErrorHandler(e)

	e.Use(echoMw.RequestID(), middleware.RequestLogger())

	custHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	e.GET("/health", handlers.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	customersAPI := e.Group("/customers")
	customersAPI.GET("", custHandler.GetAll)
	customersAPI.GET("/:id", custHandler.Get).Name = handlers.GetCustomerRouteName
	customersAPI.POST("", custHandler.Post)
	customersAPI.PUT("", custHandler.Put)
	customersAPI.DELETE("/:id", custHandler.DeleteByID)

	return e
}

// HTTPErrorHandler maps application errors to status codes, unknown errors are hidden behind 500
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := logrus.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		})

		var (
			pldErr         *validation.PayloadError
			notFoundErr    *apperrors.EntryNotFoundErr
			businessErr    *apperrors.BusinessErr
			persistenceErr *apperrors.PersistenceErr
			echoErr        *echo.HTTPError
		)

		var respErr error
		switch {
		case errors.As(err, &pldErr):
			logger.Debugf("payload is invalid - %v", err)
			respErr = c.JSON(http.StatusBadRequest, pldErr)
		case errors.As(err, &notFoundErr):
			logger.Debugf("entry not found - %v", err)
			respErr = c.NoContent(http.StatusNotFound)
		case errors.As(err, &businessErr):
			logger.Infof("request rejected - %v", err)
			respErr = c.JSON(http.StatusConflict, businessErr)
		case errors.As(err, &persistenceErr):
			logger.Errorf("data source is inconsistent - %v", err)
			respErr = c.JSON(http.StatusInternalServerError, echo.Map{"message": http.StatusText(http.StatusInternalServerError)})
		case errors.As(err, &echoErr):
			if echoErr.Code >= http.StatusInternalServerError {
				logger.Errorf("request failed - %v", err)
			}
			e.DefaultHTTPErrorHandler(err, c)
		default:
			logger.Errorf("unexpected error occurred - %v", err)
			e.DefaultHTTPErrorHandler(err, c)
		}

		if respErr != nil {
			logger.Errorf("failed to send error response - %v", respErr)
		}
	}
}
