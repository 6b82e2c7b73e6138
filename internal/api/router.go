package api

import (
	"database/sql"
	"net/http"

	"comanda/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	usersHandler := &UsersHandler{DB: db, JWTSecret: jwtSecret}
	categoriesHandler := &CategoriesHandler{DB: db}
	productsHandler := &ProductsHandler{DB: db}
	ordersHandler := &OrdersHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: registration and login.
	mux.HandleFunc("POST /users", usersHandler.Register)
	mux.HandleFunc("POST /session", usersHandler.Login)

	// Authenticated user routes.
	mux.Handle("GET /me", authMW(http.HandlerFunc(usersHandler.Me)))
	mux.Handle("POST /session/logout", authMW(http.HandlerFunc(usersHandler.Logout)))

	// Categories: read (all roles), write (admin).
	mux.Handle("POST /category", authMW(requireAdmin(http.HandlerFunc(categoriesHandler.Create))))
	mux.Handle("GET /category", authMW(http.HandlerFunc(categoriesHandler.List)))

	// Products: read (all roles), write (admin).
	mux.Handle("POST /product", authMW(requireAdmin(http.HandlerFunc(productsHandler.Create))))
	mux.Handle("GET /products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("DELETE /product", authMW(requireAdmin(http.HandlerFunc(productsHandler.Delete))))
	mux.Handle("GET /category/product", authMW(http.HandlerFunc(productsHandler.ListByCategory)))
	mux.Handle("GET /product/{id}/banner", authMW(http.HandlerFunc(productsHandler.GetBanner)))

	// Orders (all roles).
	mux.Handle("POST /order", authMW(http.HandlerFunc(ordersHandler.Create)))
	mux.Handle("GET /orders", authMW(http.HandlerFunc(ordersHandler.List)))
	mux.Handle("DELETE /order", authMW(http.HandlerFunc(ordersHandler.Delete)))
	mux.Handle("POST /order/add", authMW(http.HandlerFunc(ordersHandler.AddItem)))
	mux.Handle("DELETE /order/item/remove", authMW(http.HandlerFunc(ordersHandler.RemoveItem)))
	mux.Handle("GET /order/detail", authMW(http.HandlerFunc(ordersHandler.Detail)))
	mux.Handle("PUT /order/send", authMW(http.HandlerFunc(ordersHandler.Send)))
	mux.Handle("PUT /order/finish", authMW(http.HandlerFunc(ordersHandler.Finish)))

	return mux
}
