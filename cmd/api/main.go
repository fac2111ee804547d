package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jukulabs/juku-backend-go/internal/config"
	"github.com/jukulabs/juku-backend-go/internal/domain/tax"
	appHTTP "github.com/jukulabs/juku-backend-go/internal/handler/http"
	"github.com/jukulabs/juku-backend-go/internal/pkg/database"
	"github.com/jukulabs/juku-backend-go/internal/pkg/jwt"
	"github.com/jukulabs/juku-backend-go/internal/repository/postgresql"
	payrollService "github.com/jukulabs/juku-backend-go/internal/service/payroll"
	schoolService "github.com/jukulabs/juku-backend-go/internal/service/school"
	teacherService "github.com/jukulabs/juku-backend-go/internal/service/teacher"
	"github.com/jukulabs/juku-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	taxTable, err := tax.LoadCSVFile(cfg.Payroll.TaxTablePath)
	if err != nil {
		log.Fatal("Failed to load withholding tax table: ", err)
	}

	schoolRepo := postgresql.NewSchoolRepositoryPostgreSQL(db)
	teacherRepo := postgresql.NewTeacherRepositoryPostgreSQL(db)
	attendanceRepo := postgresql.NewMonthlyAttendanceRepositoryPostgreSQL(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	extractor := timesheet.NewExtractor(timesheet.DefaultPeriodTable())

	schoolSvc := schoolService.NewSchoolService(schoolRepo)
	teacherSvc := teacherService.NewTeacherService(teacherRepo, schoolRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, teacherRepo, txManager, extractor, taxTable)

	schoolHandler := appHTTP.NewSchoolHandler(schoolSvc)
	teacherHandler := appHTTP.NewTeacherHandler(teacherSvc)
	salaryHandler := appHTTP.NewSalaryHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, schoolHandler, teacherHandler, salaryHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
