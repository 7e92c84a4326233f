package rmux

import (
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rmux/core/rtr"
)

// RoutesOverview returns a handler rendering an HTML page of every
// registered route - method, path, and handler reference. Mount it on a
// diagnostics path during development:
//
//	d.Get("/debug/routes", rmux.RoutesOverview(d))
func RoutesOverview(d *Dispatcher) Handler {
	return func(ctx Context) (any, error) {
		b := element.NewBuilder()

		b.Html().R(
			b.Head().R(
				b.Title().T("Registered Routes"),
				b.Style().T(`
					body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
					.title { font-size: 1.5em; margin-bottom: 12px; }
					.route { padding: 6px 10px; border-radius: 4px; }
					.route:nth-child(odd) { background: #f2f2f2; }
					.count { color: #666; margin-top: 12px; }
				`),
			),
			b.Body().R(
				b.DivClass("title").T("Registered Routes"),
				element.RenderComponents(b, routesListing{routes: d.ListRoutes()}),
			),
		)

		return nil, ctx.WriteHTML(b.String())
	}
}

// routesListing renders one line per route plus a footer count.
type routesListing struct {
	routes []rtr.RouteList
}

func (rl routesListing) Render(b *element.Builder) any {
	for _, route := range rl.routes {
		b.DivClass("route").R(
			b.Strong().T(route.Method),
			b.T(" "+route.Path),
		)
	}

	b.Hr()
	b.DivClass("count").T("total routes: " + strconv.Itoa(len(rl.routes)))
	return nil
}
