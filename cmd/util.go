package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"roboadvisor/api"
	"roboadvisor/internal"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	profileRepository := repository.NewInvestmentProfileRepository()
	holdingRepository := repository.NewHoldingRepository()
	eventRepository := repository.NewRebalancingEventRepository()
	tlhEventRepository := repository.NewTaxLossHarvestingEventRepository()
	replacementRepository := repository.NewReplacementRepository(nil)

	marketDataRepository := repository.NewMarketDataRepository(defaultSectors())
	if strings.EqualFold(os.Getenv("ROBO_ENV"), "test") {
		marketDataRepository = repository.NewStaticMarketDataRepository(staticQuotesForTests())
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	profileService := service.NewProfileService(dbConn, profileRepository)
	portfolioService := service.NewPortfolioService(dbConn, holdingRepository, marketDataRepository)
	transactionService := service.NewTransactionService(
		dbConn,
		holdingRepository,
		profileRepository,
		eventRepository,
		tlhEventRepository,
		marketDataRepository,
		replacementRepository,
	)
	driftService := service.NewDriftService(profileService, portfolioService)
	tlhService := service.NewTaxLossHarvestingService(profileService, portfolioService, replacementRepository)
	recommendationService := service.NewRecommendationService(profileService, gptRepository)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		ProfileService:        profileService,
		PortfolioService:      portfolioService,
		TransactionService:    transactionService,
		DriftService:          driftService,
		TlhService:            tlhService,
		RecommendationService: recommendationService,
		EventRepository:       eventRepository,
		TlhEventRepository:    tlhEventRepository,
		ContactRepository:     repository.ContactRepositoryHandler{},
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:        secrets.Jwt,
	}

	return apiHandler, nil
}

func defaultSectors() map[string]string {
	return map[string]string{
		"AAPL": "Technology",
		"TSLA": "Consumer Cyclical",
		"NVDA": "Technology",
		"VOO":  "Broad Market",
		"QQQ":  "Broad Market",
		"BND":  "Fixed Income",
		"VNQ":  "Real Estate",
		"GLD":  "Commodities",
		"SOXX": "Technology",
		"TSLF": "Consumer Cyclical",
	}
}

func staticQuotesForTests() map[string]domain.Quote {
	return map[string]domain.Quote{
		"AAPL": {Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.NewFromFloat(183.10), Sector: "Technology"},
		"TSLA": {Symbol: "TSLA", Name: "Tesla, Inc.", Price: decimal.NewFromFloat(200.00), Sector: "Consumer Cyclical"},
		"VOO":  {Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Price: decimal.NewFromFloat(445.75), Sector: "Broad Market"},
		"BND":  {Symbol: "BND", Name: "Vanguard Total Bond Market ETF", Price: decimal.NewFromFloat(71.85), Sector: "Fixed Income"},
	}
}
