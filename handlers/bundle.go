package handlers

import (
	"github.com/gin-gonic/gin"

	studentRepoPkg "chamba/database/repository/student"
	"chamba/services/auth"
	"chamba/services/income"
	"chamba/services/storage"
	"chamba/services/wizard"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StudentRepo studentRepoPkg.StudentRepository

	// Auth endpoints
	GoogleSignInHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc

	// Registration wizard endpoints
	StartWizardHandler    gin.HandlerFunc
	GetWizardHandler      gin.HandlerFunc
	UpdatePersonalHandler gin.HandlerFunc
	SetSkillsHandler      gin.HandlerFunc
	UpdateAcademicHandler gin.HandlerFunc
	ToggleDayHandler      gin.HandlerFunc
	SetDaySlotsHandler    gin.HandlerFunc
	ClearDayHandler       gin.HandlerFunc
	DuplicateDayHandler   gin.HandlerFunc
	NextStepHandler       gin.HandlerFunc
	PreviousStepHandler   gin.HandlerFunc
	JumpToStepHandler     gin.HandlerFunc
	ExitWizardHandler     gin.HandlerFunc
	UploadDocumentHandler gin.HandlerFunc

	// Income estimate endpoints
	InitiateEstimateHandler     gin.HandlerFunc
	GetEstimateHandler          gin.HandlerFunc
	SetEstimateSkillsHandler    gin.HandlerFunc
	SetEstimateCityHandler      gin.HandlerFunc
	NextEstimateStepHandler     gin.HandlerFunc
	PreviousEstimateStepHandler gin.HandlerFunc
	JumpEstimateStepHandler     gin.HandlerFunc

	// Catalog endpoints
	GetSkillCatalogHandler    gin.HandlerFunc
	GetScheduleOptionsHandler gin.HandlerFunc
	GetPricedCitiesHandler    gin.HandlerFunc

	// Student endpoints
	GetOwnProfileHandler     gin.HandlerFunc
	GetStudentByEmailHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	authSvc auth.AuthService,
	wizardSvc wizard.WizardService,
	estimateSvc income.EstimateService,
	storageSvc storage.StorageService,
	studentRepo studentRepoPkg.StudentRepository,
) *HandlerBundle {
	return &HandlerBundle{
		StudentRepo: studentRepo,

		GoogleSignInHandler: GoogleSignInHandler(authSvc),
		SignOutHandler:      SignOutHandler(authSvc),

		StartWizardHandler:    StartWizardHandler(wizardSvc),
		GetWizardHandler:      GetWizardHandler(wizardSvc),
		UpdatePersonalHandler: UpdatePersonalHandler(wizardSvc),
		SetSkillsHandler:      SetSkillsHandler(wizardSvc),
		UpdateAcademicHandler: UpdateAcademicHandler(wizardSvc),
		ToggleDayHandler:      ToggleDayHandler(wizardSvc),
		SetDaySlotsHandler:    SetDaySlotsHandler(wizardSvc),
		ClearDayHandler:       ClearDayHandler(wizardSvc),
		DuplicateDayHandler:   DuplicateDayHandler(wizardSvc),
		NextStepHandler:       NextStepHandler(wizardSvc),
		PreviousStepHandler:   PreviousStepHandler(wizardSvc),
		JumpToStepHandler:     JumpToStepHandler(wizardSvc),
		ExitWizardHandler:     ExitWizardHandler(wizardSvc),
		UploadDocumentHandler: UploadDocumentHandler(storageSvc),

		InitiateEstimateHandler:     InitiateEstimateHandler(estimateSvc),
		GetEstimateHandler:          GetEstimateHandler(estimateSvc),
		SetEstimateSkillsHandler:    SetEstimateSkillsHandler(estimateSvc),
		SetEstimateCityHandler:      SetEstimateCityHandler(estimateSvc),
		NextEstimateStepHandler:     NextEstimateStepHandler(estimateSvc),
		PreviousEstimateStepHandler: PreviousEstimateStepHandler(estimateSvc),
		JumpEstimateStepHandler:     JumpEstimateStepHandler(estimateSvc),

		GetSkillCatalogHandler:    GetSkillCatalogHandler(),
		GetScheduleOptionsHandler: GetScheduleOptionsHandler(),
		GetPricedCitiesHandler:    GetPricedCitiesHandler(),

		GetOwnProfileHandler:     GetOwnProfileHandler(studentRepo),
		GetStudentByEmailHandler: GetStudentByEmailHandler(studentRepo),
	}
}
