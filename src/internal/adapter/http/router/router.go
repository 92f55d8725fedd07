package router

import "net/http"

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	iinController RouteRegistrar,
	employeeController RouteRegistrar,
	paymentController RouteRegistrar,
	draftController RouteRegistrar,
	referenceController RouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	for _, controller := range []RouteRegistrar{
		iinController,
		employeeController,
		paymentController,
		draftController,
		referenceController,
	} {
		if controller != nil {
			controller.RegisterRoutes(mux, authMiddleware)
		}
	}

	return mux
}
