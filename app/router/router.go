package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pizzaria-storefront/app/controller"
	"pizzaria-storefront/auth"
)

type Controllers struct {
	Menu       *controller.MenuController
	Cart       *controller.CartController
	Checkout   *controller.CheckoutController
	Product    *controller.ProductController
	Additional *controller.AdditionalController
	Upload     *controller.UploadController
	Auth       *controller.AuthController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the HTTP handler. Storefront routes run inside the visitor's
// session; admin routes other than login require a bearer token.
func SetupRoutes(controllers *Controllers, sessions controller.SessionStore, tokens *auth.JWTManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Ping endpoint
	r.Get("/ping", pingHandler)

	// Public menu
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", controllers.Menu.GetMenu)
		r.Get("/additionals", controllers.Menu.GetAdditionals)
		r.Get("/pdf", controllers.Menu.GetMenuPDF)
	})

	// Storefront session routes
	r.Group(func(r chi.Router) {
		r.Use(controller.WithSession(sessions))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.Cart.GetCart)
			r.Delete("/", controllers.Cart.Clear)
			r.Post("/toggle", controllers.Cart.Toggle)
			r.Get("/events", controllers.Cart.Events)
			r.Post("/items", controllers.Cart.AddItem)
			r.Post("/items/increment", controllers.Cart.Increment)
			r.Post("/items/decrement", controllers.Cart.Decrement)
			r.Post("/items/remove", controllers.Cart.Remove)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.Checkout.GetCheckout)
			r.Put("/delivery", controllers.Checkout.SetDeliveryOption)
			r.Put("/customer", controllers.Checkout.UpdateCustomer)
			r.Post("/next", controllers.Checkout.Next)
			r.Post("/prev", controllers.Checkout.Prev)
			r.Post("/goto", controllers.Checkout.GoTo)
		})
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", controllers.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin(tokens))

			r.Get("/products", controllers.Product.ListProducts)
			r.Post("/products", controllers.Product.CreateProduct)
			r.Get("/products/{id}", controllers.Product.GetProduct)
			r.Put("/products/{id}", controllers.Product.UpdateProduct)
			r.Delete("/products/{id}", controllers.Product.DeleteProduct)

			r.Get("/additionals", controllers.Additional.ListAdditionals)
			r.Post("/additionals", controllers.Additional.CreateAdditional)
			r.Put("/additionals/{id}", controllers.Additional.UpdateAdditional)
			r.Delete("/additionals/{id}", controllers.Additional.DeleteAdditional)

			r.Post("/uploads/image", controllers.Upload.UploadImage)
		})
	})

	return r
}
