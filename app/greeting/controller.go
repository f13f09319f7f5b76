package greeting

import (
	"errors"
	"net/http"

	gohttp "github.com/km-arc/go-beans/framework/http"
	"github.com/km-arc/go-beans/framework/routing"
)

// Controller serves greetings over HTTP.
//
//	GET /greetings          → known languages
//	GET /greetings/{lang}   → greeting, ?name= optional
type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Routes(r *routing.Router) {
	r.Prefix("/greetings", func(g *routing.Router) {
		g.Get("/", c.index)
		g.Get("/{lang}", c.show)
	})
}

func (c *Controller) index(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(map[string]any{"languages": c.svc.Languages()})
}

func (c *Controller) show(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	msg, err := c.svc.Greet(routing.Param(r, "lang"), r.URL.Query().Get("name"))
	switch {
	case errors.Is(err, ErrUnknownLanguage):
		res.NotFound(err.Error())
	case err != nil:
		res.ServerError()
	default:
		res.Success(map[string]any{"greeting": msg})
	}
}
