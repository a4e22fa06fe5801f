package main

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"airport-finder/internal/airports"
	"airport-finder/internal/batch"
	"airport-finder/internal/calculator"
	"airport-finder/internal/excel"
	"airport-finder/internal/models"
)

// === Job System ===

type JobStatus string

const (
	StatusRunning JobStatus = "running"
	StatusDone    JobStatus = "done"
	StatusError   JobStatus = "error"
)

type JobResult struct {
	Rows     int    `json:"rows"`
	Skipped  int    `json:"skipped"`
	Sheet    string `json:"sheet"`
	Output   string `json:"output"`   // Full path
	Filename string `json:"filename"` // Just filename for download
}

type Job struct {
	ID        string
	Status    JobStatus
	Logs      []string
	Progress  int // 0-100
	Result    *JobResult
	Error     string
	Mutex     sync.RWMutex
	CreatedAt time.Time
}

var (
	JobStore = make(map[string]*Job)
	JobLock  sync.RWMutex
)

func NewJob() *Job {
	return &Job{
		ID:        uuid.New().String(),
		Status:    StatusRunning,
		Logs:      []string{},
		CreatedAt: time.Now(),
	}
}

func (j *Job) Log(msg string) {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()
	ts := time.Now().Format("15:04:05")
	j.Logs = append(j.Logs, fmt.Sprintf("[%s] %s", ts, msg))
}

func GetJob(id string) *Job {
	JobLock.RLock()
	defer JobLock.RUnlock()
	return JobStore[id]
}

// === Main ===

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	authUser := getEnv("AUTH_USER", "admin")
	authPass := os.Getenv("AUTH_PASSWORD")
	if authPass == "" {
		log.Fatal("AUTH_PASSWORD is required")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET is required")
	}

	gin.SetMode(gin.ReleaseMode)

	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("session", store))

	// Auth Middleware
	authRequired := func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user") == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
			return
		}
		c.Next()
	}

	r.POST("/login", func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
			return
		}

		if req.Username != authUser || req.Password != authPass {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
			return
		}

		session := sessions.Default(c)
		session.Set("user", req.Username)
		session.Save()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/logout", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Clear()
		session.Save()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(authRequired)
	{
		// Single-coordinate lookup. Unlike batch rows, interactive input is
		// range-checked before use.
		authorized.POST("/lookup", func(c *gin.Context) {
			var req struct {
				Latitude  *float64 `json:"latitude"`
				Longitude *float64 `json:"longitude"`
			}
			if err := c.ShouldBindJSON(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "latitude and longitude are required numbers"})
				return
			}

			loc := models.Coordinate{Lat: *req.Latitude, Lon: *req.Longitude}
			if err := loc.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
				return
			}

			airport, dist, err := calculator.FindNearest(loc.Lat, loc.Lon, airports.Reference)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"ok": true,
				"airport": gin.H{
					"code": airport.Code,
					"name": airport.Name,
					"lat":  airport.Loc.Lat,
					"lon":  airport.Loc.Lon,
				},
				"distance_km": math.Round(dist*100) / 100,
			})
		})

		authorized.POST("/run", func(c *gin.Context) {
			file, err := c.FormFile("input_file")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "input_file is required"})
				return
			}

			os.MkdirAll("uploads", 0755)
			os.MkdirAll("output", 0755)

			inputPath := filepath.Join("uploads", fmt.Sprintf("%s_%s", uuid.New().String(), file.Filename))
			if err := c.SaveUploadedFile(file, inputPath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "upload failed"})
				return
			}

			job := NewJob()
			JobLock.Lock()
			JobStore[job.ID] = job
			JobLock.Unlock()

			go processJob(job, inputPath)

			c.JSON(http.StatusAccepted, gin.H{"ok": true, "job_id": job.ID})
		})

		authorized.GET("/logs", func(c *gin.Context) {
			job := GetJob(c.Query("job_id"))
			if job == nil {
				c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Job not found"})
				return
			}

			job.Mutex.RLock()
			logs := make([]string, len(job.Logs))
			copy(logs, job.Logs)
			status := job.Status
			progress := job.Progress
			job.Mutex.RUnlock()

			c.JSON(http.StatusOK, gin.H{
				"ok":       true,
				"logs":     logs,
				"status":   status,
				"progress": progress,
			})
		})

		authorized.GET("/status", func(c *gin.Context) {
			job := GetJob(c.Query("job_id"))
			if job == nil {
				c.JSON(http.StatusOK, gin.H{"ok": false})
				return
			}
			job.Mutex.RLock()
			defer job.Mutex.RUnlock()

			res := gin.H{
				"ok":     true,
				"status": job.Status,
				"error":  job.Error,
			}
			if job.Result != nil {
				res["result"] = job.Result
			}
			c.JSON(http.StatusOK, res)
		})

		authorized.GET("/download-result/:filename", func(c *gin.Context) {
			filename := filepath.Base(c.Param("filename"))
			c.File(filepath.Join("output", filename))
		})
	}

	port := getEnv("PORT", "9595")

	log.Printf("Airport finder listening addr=:%s", port)
	r.Run(":" + port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func processJob(job *Job, inputPath string) {
	defer func() {
		if r := recover(); r != nil {
			job.Mutex.Lock()
			job.Status = StatusError
			job.Error = fmt.Sprintf("Panic: %v", r)
			job.Mutex.Unlock()
		}
	}()

	job.Log(fmt.Sprintf("Processing file: %s", filepath.Base(inputPath)))

	start := time.Now()

	results, skipped, err := batch.ProcessFile(inputPath, airports.Reference, job.Log)
	if err != nil {
		failJob(job, fmt.Sprintf("Batch failed: %v", err))
		return
	}

	job.Log(fmt.Sprintf("Matched %d rows, skipped %d. Took %s.", len(results), skipped, time.Since(start)))

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outputPath := filepath.Join("output", base+"_results.xlsx")

	job.Log("Writing result file...")
	if err := excel.WriteResults(outputPath, results, "Results"); err != nil {
		failJob(job, fmt.Sprintf("Write failed: %v", err))
		return
	}

	job.Mutex.Lock()
	job.Status = StatusDone
	job.Result = &JobResult{
		Rows:     len(results),
		Skipped:  skipped,
		Sheet:    "Results",
		Output:   outputPath,
		Filename: filepath.Base(outputPath),
	}
	job.Progress = 100
	job.Mutex.Unlock()
	job.Log("Done.")
}

func failJob(job *Job, msg string) {
	job.Mutex.Lock()
	job.Status = StatusError
	job.Error = msg
	job.Logs = append(job.Logs, "[ERROR] "+msg)
	job.Mutex.Unlock()
}
