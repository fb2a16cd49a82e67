package las

import (
	"encoding/json"
	"log"
	"time"

	"github.com/adrirubim/laserpack/internal/database"
	"github.com/adrirubim/laserpack/internal/models"
	"github.com/adrirubim/laserpack/internal/websocket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncService pulls article aggregates from the LAS ERP into the local
// database. The rest of the application only ever sees fully-populated,
// normalized aggregates; whatever the ERP's endpoints return is cleaned
// up here.
type SyncService struct {
	client *Client
	db     *database.DB
	hub    *websocket.Hub
	cfg    Config
	stop   chan struct{}
}

// Config holds LAS connection settings
type Config struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval time.Duration
}

// NewSyncService creates a new synchronization service. hub may be nil
// when no dashboard notifications are wanted (tests, one-shot imports).
func NewSyncService(db *database.DB, hub *websocket.Hub, cfg Config) *SyncService {
	return &SyncService{
		client: NewClient(cfg.URL, cfg.Database, cfg.Username, cfg.Password),
		db:     db,
		hub:    hub,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

// Start begins the background synchronization loop
func (s *SyncService) Start() {
	if s.cfg.URL == "" {
		log.Println("LAS Sync disabled: LAS_URL not configured")
		return
	}

	go func() {
		log.Println("📡 LAS Sync Service started")

		if _, err := s.client.Authenticate(); err != nil {
			log.Printf("❌ LAS authentication failed: %v", err)
			return
		}

		// Initial sync delay so the HTTP server comes up first
		time.Sleep(5 * time.Second)
		s.syncArticles()

		interval := s.cfg.SyncInterval
		if interval <= 0 {
			interval = 15 * time.Minute
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.syncArticles()
			case <-s.stop:
				log.Println("🛑 LAS Sync Service stopped")
				return
			}
		}
	}()
}

// Stop halts the service
func (s *SyncService) Stop() {
	close(s.stop)
}

// syncArticles pulls changed article aggregates and upserts them locally.
func (s *SyncService) syncArticles() {
	log.Println("🔄 LAS: Syncing articles...")

	var lastSync string = "2000-01-01 00:00:00"
	var last models.Article
	if err := s.db.Order("last_synced_at DESC").First(&last).Error; err == nil && last.LastSyncedAt != nil {
		lastSync = last.LastSyncedAt.UTC().Format("2006-01-02 15:04:05")
	}

	domain := []interface{}{
		[]interface{}{"write_date", ">", lastSync},
	}

	records, err := s.client.SearchRead("las.article", domain, nil, 500, 0)
	if err != nil {
		log.Printf("❌ LAS sync error: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	count := 0
	for _, record := range records {
		article := MapArticle(record)
		if article.UUID == "" || article.CodArticleLAS == "" {
			log.Printf("⚠️ LAS: skipping article without identity: %v", record["id"])
			continue
		}

		if raw, err := json.Marshal(record); err == nil {
			article.RawData = raw
		}
		now := time.Now().UTC()
		article.LastSyncedAt = &now

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := upsertReferences(tx, article); err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "uuid"}},
				UpdateAll: true,
			}).Omit(clause.Associations).Create(article).Error; err != nil {
				return err
			}
			return replaceChildren(tx, article)
		})
		if err != nil {
			log.Printf("❌ LAS: failed to store article %s: %v", article.CodArticleLAS, err)
			continue
		}

		if s.hub != nil {
			s.hub.BroadcastEvent(websocket.Event{
				Type:        "article_imported",
				ArticleUUID: article.UUID,
				Code:        article.CodArticleLAS,
			})
		}
		count++
	}

	log.Printf("✅ LAS: %d article(s) synced", count)
}
