package routes

import (
	"mutawazi_proposals/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathServices  = "/services"
	PathCashFlow  = "/cashflow"
)

func addProposalRoutes(
	rg *gin.RouterGroup,
	cashFlowHandler *handlers.CashFlowHandler,
	proposalHandler *handlers.ProposalHandler,
	metadataHandler *handlers.MetadataHandler,
	catalogHandler *handlers.CatalogHandler,
	overheadHandler *handlers.OverheadHandler,
	justificationHandler *handlers.JustificationHandler,
) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:service_id", catalogHandler.GetService)
	}

	cashflow := rg.Group(PathCashFlow)
	{
		cashflow.POST("/deliverables", cashFlowHandler.ComputeDeliverables)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:quotation_code", proposalHandler.GetProposal)
		proposals.GET("/:quotation_code/summary", proposalHandler.GetProposalSummary)
		proposals.DELETE("/:quotation_code", proposalHandler.DeleteProposal)
	}

	readiness := rg.Group("/readiness")
	{
		readiness.GET("/questions", metadataHandler.GetReadinessQuestions)
		readiness.POST("/assess", metadataHandler.AssessReadiness)
	}

	rg.POST("/metadata", metadataHandler.CreateMetadata)
	rg.GET("/overhead", overheadHandler.GetOverhead)
	rg.PUT("/overhead", overheadHandler.UpdateOverhead)
	rg.POST("/price-justification", justificationHandler.GenerateJustification)
}
