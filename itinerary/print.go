package itinerary

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/trips/:tripid/itinerary/print
func PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tripID := ps.ByName("tripid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	filter := bson.M{"trip_id": tripID, "user_id": userID, "deleted": bson.M{"$ne": true}}
	var it models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&it); err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	// QR payload links the printout back to the trip
	qrPNG, err := qrcode.Encode(fmt.Sprintf("voyago://trips/%s", tripID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Trip Itinerary - %s", trip.Place.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Dates: %s - %s",
		trip.StartDate.Format("Jan 2, 2006"), trip.EndDate.Format("Jan 2, 2006")))
	pdf.Ln(10)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, day.Date.Format("Monday, January 2"))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			line := fmt.Sprintf("%s: %s", act.Time, act.Name)
			if act.Description != "" {
				line += " - " + act.Description
			}
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(4)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+tripID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
