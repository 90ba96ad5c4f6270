package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                    *sql.DB
	ProfileService        service.ProfileService
	PortfolioService      service.PortfolioService
	TransactionService    service.TransactionService
	DriftService          service.DriftService
	TlhService            service.TaxLossHarvestingService
	RecommendationService service.RecommendationService
	EventRepository       repository.RebalancingEventRepository
	TlhEventRepository    repository.TaxLossHarvestingEventRepository
	ContactRepository     repository.ContactRepository
	ApiRequestRepository  repository.ApiRequestRepository
	JwtDecodeToken        string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)
	router.Use(m.authMiddleware())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the robo-advisor"})
	})
	router.GET("/profile/:investorId", m.getProfile)
	router.PUT("/profile/:investorId", m.updateProfile)
	router.GET("/portfolio/:investorId", m.getPortfolio)
	router.POST("/buy", m.buy)
	router.POST("/sell", m.sell)
	router.GET("/rebalancing-status/:investorId", m.rebalancingStatus)
	router.GET("/tax-loss-harvesting-opportunities/:investorId", m.taxLossHarvestingOpportunities)
	router.POST("/recommendations/:investorId", m.recommendations)
	router.GET("/events/:investorId", m.events)
	router.POST("/contact", m.contact)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps validation failures to a structured
// {success:false, message} body so the caller can branch on success,
// and everything else to a 500.
func returnServiceError(err error, c *gin.Context) {
	var validationErr service.ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(400, gin.H{
			"success": false,
			"message": validationErr.Error(),
		})
		return
	}
	returnErrorJson(err, c)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	type investorIdBody struct {
		InvestorID string `json:"investorId"`
	}

	reqBody := investorIdBody{}
	_ = json.Unmarshal(body, &reqBody)

	var investorID *string
	if reqBody.InvestorID != "" {
		investorID = &reqBody.InvestorID
	} else if param := ctx.Param("investorId"); param != "" {
		investorID = &param
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		InvestorID:  investorID,
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
