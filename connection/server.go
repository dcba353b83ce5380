package connection

import (
	"log"

	"frilance/config"
	"frilance/controller/auth"
	"frilance/controller/calendar"
	"frilance/controller/catalog"
	"frilance/controller/client"
	"frilance/controller/dashboard"
	"frilance/controller/expense"
	"frilance/controller/invoice"
	"frilance/controller/meeting"
	"frilance/controller/project"
	"frilance/controller/quotation"
	"frilance/controller/settings"
	"frilance/controller/showcase"
	"frilance/controller/timeentry"
	"frilance/controller/todo"
	"frilance/controller/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := DBConnection(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	auth.SignInController(router, db)
	auth.SignUpController(router, db)
	user.UserController(router, db)

	client.ClientController(router, db)
	project.ProjectController(router, db)
	invoice.InvoiceController(router, db)
	quotation.QuotationController(router, db)
	todo.TodoController(router, db)
	expense.ExpenseController(router, db)
	timeentry.TimeEntryController(router, db)
	catalog.CatalogController(router, db)
	meeting.MeetingController(router, db)
	settings.SettingsController(router, db)
	dashboard.DashboardController(router, db)
	calendar.CalendarController(router, db)
	showcase.ShowcaseController(router, db)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
