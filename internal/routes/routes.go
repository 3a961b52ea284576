package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_office/internal/controllers"
	"fleet_office/internal/services"
	"fleet_office/internal/store"
)

// SetupRouter wires stores, services and controllers onto one engine.
// Middleware attaches first: gin only applies it to routes registered
// afterwards.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	auth := controllers.NewAuthController(store.NewUserStore(db))
	vehicle := controllers.NewVehicleController(services.NewVehicleService(store.NewVehicleStore(db)))
	trip := controllers.NewTripController(services.NewTripService(store.NewTripStore(db)))
	equipment := controllers.NewEquipmentController(services.NewEquipmentService(store.NewEquipmentStore(db)))
	brand := controllers.NewBrandController(services.NewBrandService(store.NewBrandStore(db)))
	email := controllers.NewEmailController(services.NewEmailService(store.NewEmailStore(db)))
	records := controllers.NewRecordsController(services.NewRecordsService(store.NewRecordsStore(db)))
	refData := controllers.NewRefDataController(services.NewRefDataService(store.NewRefDataStore(db)))
	report := controllers.NewReportController(services.NewReportService(store.NewReportStore(db)))

	AuthRoutes(r, auth)
	VehicleRoutes(r, vehicle)
	TripRoutes(r, trip)
	EquipmentRoutes(r, equipment)
	BrandRoutes(r, brand)
	EmailRoutes(r, email)
	RecordsRoutes(r, records)
	RefDataRoutes(r, refData)
	ReportRoutes(r, report)

	return r
}
