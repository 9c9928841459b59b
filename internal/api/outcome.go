package api

import (
	"errors"
	"net/http"

	"go-blog/internal/form"
	"go-blog/internal/middleware"
	"go-blog/internal/model"
	"go-blog/internal/service"
	"go-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	NotFoundView = "misc/404.html"
	FaultView    = middleware.FaultView
)

type Kind int

const (
	KindRendered Kind = iota
	KindRedirected
	KindNotFound
	KindFault
)

// Outcome is what a handler decided to do with a request.
type Outcome struct {
	Kind     Kind
	View     string
	Status   int
	Data     gin.H
	Errors   form.Errors
	Edit     bool
	Location string
	Err      error
}

func Rendered(view string, data gin.H) Outcome {
	return Outcome{Kind: KindRendered, View: view, Status: http.StatusOK, Data: data}
}

// WithErrors marks a re-rendered form. Validation failures still answer 200.
func (o Outcome) WithErrors(errs form.Errors) Outcome {
	o.Errors = errs
	return o
}

func (o Outcome) AsEdit() Outcome {
	o.Edit = true
	return o
}

func Redirected(location string) Outcome {
	return Outcome{Kind: KindRedirected, Status: http.StatusFound, Location: location}
}

func NotFound() Outcome {
	return Outcome{Kind: KindNotFound, Status: http.StatusNotFound}
}

func Fault(err error) Outcome {
	return Outcome{Kind: KindFault, Status: http.StatusInternalServerError, Err: err}
}

// errorOutcome maps service errors onto NotFound or Fault.
func errorOutcome(err error) Outcome {
	if errors.Is(err, service.ErrNotFound) {
		return NotFound()
	}
	return Fault(err)
}

// viewModel is the JSON body handed to the page renderer.
type viewModel struct {
	View   string      `json:"view"`
	User   *model.User `json:"user,omitempty"`
	Data   gin.H       `json:"data"`
	Errors form.Errors `json:"errors,omitempty"`
	Edit   bool        `json:"edit,omitempty"`
}

type handlerFunc func(c *gin.Context) Outcome

func handle(h handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, h(c))
	}
}

func respond(c *gin.Context, o Outcome) {
	user := middleware.CurrentUser(c)

	switch o.Kind {
	case KindRedirected:
		c.Redirect(http.StatusFound, o.Location)
	case KindNotFound:
		c.JSON(http.StatusNotFound, viewModel{
			View: NotFoundView,
			User: user,
			Data: gin.H{"path": c.Request.URL.Path},
		})
	case KindFault:
		if o.Err != nil {
			_ = c.Error(o.Err)
		}
		logger.L.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(o.Err))
		c.JSON(http.StatusInternalServerError, viewModel{
			View: FaultView,
			User: user,
			Data: gin.H{"path": c.Request.URL.Path},
		})
	default:
		status := o.Status
		if status == 0 {
			status = http.StatusOK
		}
		data := o.Data
		if data == nil {
			data = gin.H{}
		}
		c.JSON(status, viewModel{
			View:   o.View,
			User:   user,
			Data:   data,
			Errors: o.Errors,
			Edit:   o.Edit,
		})
	}
}
