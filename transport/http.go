package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	contactapp "github.com/oleksandr-romashko/contacts-api/application/contact"
	reminderapp "github.com/oleksandr-romashko/contacts-api/application/reminder"
	userapp "github.com/oleksandr-romashko/contacts-api/application/user"
	"github.com/oleksandr-romashko/contacts-api/cmd/config"
	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/model"
	utilsContext "github.com/oleksandr-romashko/contacts-api/utils/context"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
	validatorx "github.com/oleksandr-romashko/contacts-api/utils/validator"
)

type RestHandler struct {
	Config      *config.Config
	DB          *sqlx.DB
	UserApp     userapp.UserApp
	ContactApp  contactapp.ContactApp
	ReminderApp reminderapp.ReminderApp
}

func NewTransport(cfg *config.Config, db *sqlx.DB, userApp userapp.UserApp, contactApp contactapp.ContactApp, reminderApp reminderapp.ReminderApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		Config:      cfg,
		DB:          db,
		UserApp:     userApp,
		ContactApp:  contactApp,
		ReminderApp: reminderApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/healthcheck", rh.Healthcheck).Methods(http.MethodGet)
	router.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	router.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/users/me", rh.Me).Methods(http.MethodGet)
	router.HandleFunc("/users/me", rh.UpdateMe).Methods(http.MethodPatch)
	router.HandleFunc("/contacts", rh.CreateContact).Methods(http.MethodPost)
	router.HandleFunc("/contacts", rh.ListContacts).Methods(http.MethodGet)
	router.HandleFunc("/contacts/upcoming-birthdays", rh.UpcomingBirthdays).Methods(http.MethodGet)
	router.HandleFunc("/contacts/{id}", rh.GetContact).Methods(http.MethodGet)
	router.HandleFunc("/contacts/{id}", rh.ReplaceContact).Methods(http.MethodPut)
	router.HandleFunc("/contacts/{id}", rh.PatchContact).Methods(http.MethodPatch)
	router.HandleFunc("/contacts/{id}", rh.DeleteContact).Methods(http.MethodDelete)

	// Internal routes, guarded by the static service key
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/reminders/dispatch", rh.DispatchReminders).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return router
}

// Healthcheck handler
// @Summary Service healthcheck
// @Description Reports whether the service and its database are reachable
// @Tags Utils
// @Produce json
// @Success 200 {object} response
// @Router /healthcheck [get]
func (s *RestHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.PingContext(r.Context()); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}

// Register handler
// @Summary Register user
// @Description Register a new user with unique username and email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/users/me")
	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and password and receive JWT access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response
// @Failure 401 {object} errors.CustomError
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user profile
// @Description Profile of the authenticated user including contact total
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} errors.CustomError
// @Router /users/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateMe handler
// @Summary Update current user profile
// @Description Partially update profile fields; at least one field required
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile Update Request"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /users/me [patch]
func (s *RestHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateContact handler
// @Summary Create contact
// @Description Create a new contact owned by the authenticated user
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ContactRequest true "Contact Request"
// @Success 201 {object} model.ContactEntity
// @Failure 400 {object} errors.CustomError
// @Router /contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.CreateContact(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListContacts handler
// @Summary List contacts
// @Description Paginated contact listing with optional case-insensitive substring filters
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Items to skip" default(0)
// @Param limit query int false "Page size, 1..1000" default(50)
// @Param first_name query string false "First name substring filter"
// @Param last_name query string false "Last name substring filter"
// @Param email query string false "Email substring filter"
// @Success 200 {object} model.ContactListResponse
// @Failure 400 {object} errors.CustomError
// @Router /contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, err := parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}
	filter := parseContactFilter(r)

	res, err := s.ContactApp.ListContacts(r.Context(), userID, filter, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpcomingBirthdays handler
// @Summary Upcoming birthday celebrations
// @Description Contacts whose birthdays fall within the configured upcoming window. Weekend birthdays are celebrated on the following Monday; such contacts stay included even when the shifted celebration date lies past the window.
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Items to skip" default(0)
// @Param limit query int false "Page size, 1..1000" default(50)
// @Success 200 {object} model.CelebrationListResponse
// @Failure 400 {object} errors.CustomError
// @Router /contacts/upcoming-birthdays [get]
func (s *RestHandler) UpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, err := parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.UpcomingCelebrations(r.Context(), userID, page,
		model.Today(), s.Config.Birthday.UpcomingDays, s.Config.Birthday.MoveFeb29ToFeb28)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetContact handler
// @Summary Get contact by ID
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.ContactEntity
// @Failure 404 {object} errors.CustomError
// @Router /contacts/{id} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.GetContact(r.Context(), userID, contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReplaceContact handler
// @Summary Replace contact by ID
// @Description Full update, all fields required
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body model.ContactRequest true "Contact Request"
// @Success 200 {object} model.ContactEntity
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /contacts/{id} [put]
func (s *RestHandler) ReplaceContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.ReplaceContact(r.Context(), userID, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PatchContact handler
// @Summary Update contact by ID
// @Description Partial update; at least one field required
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body model.ContactPatchRequest true "Contact Patch Request"
// @Success 200 {object} model.ContactEntity
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /contacts/{id} [patch]
func (s *RestHandler) PatchContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ContactPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.PatchContact(r.Context(), userID, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact by ID
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.ContactEntity
// @Failure 404 {object} errors.CustomError
// @Router /contacts/{id} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.DeleteContact(r.Context(), userID, contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DispatchReminders handler
// @Summary Dispatch birthday reminders
// @Description Publishes delayed reminder messages for every user's upcoming celebrations. Internal service key required.
// @Tags Internal
// @Produce json
// @Success 200 {object} response
// @Failure 403 {object} errors.CustomError
// @Router /internal/reminders/dispatch [post]
func (s *RestHandler) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	if s.ReminderApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	published, err := s.ReminderApp.Dispatch(r.Context(), model.Today())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int{"published": published})
}
