package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"velvessa/m/domain"
	"velvessa/m/internal/workflow"
)

type ctxKey string

const (
	ctxUserID ctxKey = "userID"
	ctxRole   ctxKey = "role"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	svc    *workflow.Service
	secret string
}

// New constructs a Handler.
func New(svc *workflow.Service, secret string) *Handler {
	return &Handler{svc: svc, secret: secret}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Group(func(protected chi.Router) {
			protected.Use(h.authMiddleware)
			protected.Post("/logout", h.logout)
		})
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Put("/profile", h.updateProfile)

		pr.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Put("/{id}/status", h.updateUserStatus)
		})

		pr.Route("/stock", func(r chi.Router) {
			r.Get("/", h.listStock)
			r.Post("/", h.addStock)
			r.Get("/low", h.lowStock)
			r.Put("/{id}", h.updateStock)
			r.Delete("/{id}", h.deleteStock)
		})

		pr.Route("/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.addCustomer)
			r.Put("/{id}", h.updateCustomer)
			r.Delete("/{id}", h.deleteCustomer)
			r.Get("/{id}/orders", h.customerOrders)
		})

		pr.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Put("/{id}/delivery", h.updateDelivery)
			r.Post("/{id}/notify", h.notifyOrder)
		})

		pr.Route("/payments", func(r chi.Router) {
			r.Get("/due", h.duePayments)
			r.Post("/reminders", h.sendAllReminders)
			r.Post("/{orderID}/reminder", h.sendReminder)
		})

		pr.Get("/reports/summary", h.reportSummary)
		pr.Get("/logs/audit", h.auditLogs)
		pr.Get("/logs/sms", h.smsLogs)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Authentication helpers

type authClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(userID string, role domain.UserRole) (string, error) {
	claims := authClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(header[len("Bearer "):])
		token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(h.secret), nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims, ok := token.Claims.(*authClaims)
		if !ok {
			respondError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, allowed ...domain.UserRole) bool {
	role := r.Context().Value(ctxRole)
	if role == nil {
		respondError(w, http.StatusUnauthorized, "missing role")
		return false
	}
	current := domain.UserRole(role.(string))
	for _, allowedRole := range allowed {
		if current == allowedRole {
			return true
		}
	}
	respondError(w, http.StatusForbidden, "insufficient permissions")
	return false
}

// Auth handlers

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	user, err := h.svc.Register(domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
		Phone:    req.Phone,
	})
	if errors.Is(err, workflow.ErrDuplicateEmail) {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to register")
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.svc.Login(req.Email, req.Password)
	var denied *workflow.AccessDeniedError
	switch {
	case errors.Is(err, workflow.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case errors.As(err, &denied):
		respondError(w, http.StatusForbidden, denied.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "unable to log in")
		return
	}

	token, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout()
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.User
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(req)
	if errors.Is(err, workflow.ErrNoSession) {
		respondError(w, http.StatusUnauthorized, "no active session")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update profile")
		return
	}
	user.Password = ""
	respondJSON(w, http.StatusOK, user)
}

// User management (admin only)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	users := h.svc.Store().Users()
	for i := range users {
		users[i].Password = ""
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) updateUserStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	var req struct {
		Status domain.UserStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Status != domain.StatusApproved && req.Status != domain.StatusPending && req.Status != domain.StatusRejected {
		respondError(w, http.StatusBadRequest, "status must be Approved, Pending or Rejected")
		return
	}
	if err := h.svc.UpdateUserStatus(chi.URLParam(r, "id"), req.Status); err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Stock handlers

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var filtered []domain.StockItem
	for _, item := range h.svc.Store().Stock() {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.SKU), query) {
			continue
		}
		if category != "" && category != "All" && string(item.Category) != category {
			continue
		}
		filtered = append(filtered, item)
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleInventory) {
		return
	}
	var item domain.StockItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if item.Name == "" || item.SKU == "" {
		respondError(w, http.StatusBadRequest, "name and sku are required")
		return
	}
	respondJSON(w, http.StatusCreated, h.svc.AddStockItem(item))
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleInventory) {
		return
	}
	var item domain.StockItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = chi.URLParam(r, "id")
	if err := h.svc.UpdateStockItem(item); err != nil {
		respondError(w, http.StatusNotFound, "stock item not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteStock(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleInventory) {
		return
	}
	if err := h.svc.DeleteStockItem(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "stock item not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.LowStock())
}

// Customer handlers

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
	var filtered []domain.Customer
	for _, c := range h.svc.Store().Customers() {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(c.Phone, query) {
			continue
		}
		filtered = append(filtered, c)
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (h *Handler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if customer.Name == "" || customer.Phone == "" {
		respondError(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	respondJSON(w, http.StatusCreated, h.svc.AddCustomer(customer))
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer.ID = chi.URLParam(r, "id")
	if err := h.svc.UpdateCustomer(customer); err != nil {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCustomer(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) customerOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.OrdersForCustomer(chi.URLParam(r, "id")))
}

// Order handlers

type orderView struct {
	domain.Order
	CustomerName string `json:"customer_name"`
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.Store().Orders()
	views := make([]orderView, len(orders))
	for i, o := range orders {
		views[i] = orderView{Order: o, CustomerName: h.svc.CustomerName(o.CustomerID)}
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleSales) {
		return
	}
	var input workflow.OrderInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.CreateOrder(input)
	switch {
	case errors.Is(err, workflow.ErrEmptyCart), errors.Is(err, workflow.ErrCustomerRequired):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "unable to create order")
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateDelivery(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleSales) {
		return
	}
	var req struct {
		Status domain.DeliveryStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Status != domain.DeliveryPending && req.Status != domain.DeliveryShipped && req.Status != domain.DeliveryDelivered {
		respondError(w, http.StatusBadRequest, "status must be Pending, Shipped or Delivered")
		return
	}
	if err := h.svc.UpdateDeliveryStatus(chi.URLParam(r, "id"), req.Status); err != nil {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) notifyOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SendStatusNotification(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "notification sent"})
}

// Payment handlers

func (h *Handler) duePayments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"orders":              h.svc.DueOrders(),
		"outstanding_balance": h.svc.OutstandingBalance(),
	})
}

func (h *Handler) sendReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SendPaymentReminder(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "reminder sent"})
}

func (h *Handler) sendAllReminders(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SendAllReminders(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to send reminders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "reminders sent"})
}

// Reports and logs

func (h *Handler) reportSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ReportSummary())
}

func (h *Handler) auditLogs(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Store().AuditLogs())
}

func (h *Handler) smsLogs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Store().SMSLogs())
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
