package routes

import (
	"net/http"

	"voyago/auth"
	"voyago/invites"
	"voyago/itinerary"
	"voyago/middleware"
	"voyago/prefs"
	"voyago/profile"
	"voyago/ratelim"
	"voyago/tracker"
	"voyago/trips"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/trippic/*filepath", http.Dir("static/trippic"))
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", auth.LogoutUser)
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddTripRoutes(router *httprouter.Router) {
	router.POST("/api/trips", ratelim.RateLimit(middleware.Authenticate(trips.CreateTrip)))
	router.GET("/api/trips", middleware.Authenticate(trips.GetUserTrips))
	router.GET("/api/trips/:tripid", middleware.Authenticate(trips.GetTrip))
	router.DELETE("/api/trips/:tripid", middleware.Authenticate(trips.DeleteTrip))
	router.PUT("/api/trips/:tripid/notes", middleware.Authenticate(trips.UpdateSharedNotes))
	router.POST("/api/trips/:tripid/cover", ratelim.RateLimit(middleware.Authenticate(trips.UploadCoverPhoto)))
}

func AddInviteRoutes(router *httprouter.Router) {
	router.POST("/api/trips/:tripid/invites", ratelim.RateLimit(middleware.Authenticate(invites.SendInvitation)))
	router.GET("/api/trips/:tripid/invites", middleware.Authenticate(invites.GetTripInvitations))
	router.GET("/api/invites", middleware.Authenticate(invites.GetPendingInvitations))
	router.POST("/api/invites/:inviteid/respond", middleware.Authenticate(invites.RespondToInvitation))
}

func AddPreferenceRoutes(router *httprouter.Router, h *prefs.Handlers) {
	router.POST("/api/trips/:tripid/preferences", ratelim.RateLimit(middleware.Authenticate(h.SubmitPreferences)))
	router.GET("/api/trips/:tripid/preferences", middleware.Authenticate(h.GetOwnDetails))
	router.PUT("/api/trips/:tripid/status", middleware.Authenticate(h.UpdateParticipantStatus))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/trips/:tripid/itinerary", middleware.Authenticate(itinerary.GetTripItinerary))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.DELETE("/api/itineraries/:itineraryid", middleware.Authenticate(itinerary.DeleteItinerary))
	router.GET("/api/trips/:tripid/itinerary/print", middleware.Authenticate(itinerary.PrintItinerary))
}

func AddTrackerRoutes(router *httprouter.Router, hub *tracker.Hub) {
	router.GET("/api/trips/:tripid/statuses", middleware.Authenticate(tracker.GetParticipantStatuses))
	router.GET("/ws/trips/:tripid/statuses", middleware.Authenticate(tracker.LiveStatusHandler(hub)))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetOwnProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.GET("/api/users/:username", middleware.Authenticate(profile.GetUserProfile))
}

func Setup(router *httprouter.Router, hub *tracker.Hub, prefHandlers *prefs.Handlers) {
	AddStaticRoutes(router)
	AddAuthRoutes(router)
	AddTripRoutes(router)
	AddInviteRoutes(router)
	AddPreferenceRoutes(router, prefHandlers)
	AddItineraryRoutes(router)
	AddTrackerRoutes(router, hub)
	AddProfileRoutes(router)
}
