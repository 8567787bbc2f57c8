package container

import (
	"context"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/ecoevent/internal/config"
	"github.com/joshua-takyi/ecoevent/internal/helpers"
	"github.com/joshua-takyi/ecoevent/internal/identity"
	"github.com/joshua-takyi/ecoevent/internal/models"
	"github.com/joshua-takyi/ecoevent/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	Repo         *models.MongodbRepo
	Health       HealthChecker
	Verifier     identity.Verifier
	EventService *services.EventService
	JoinService  *services.JoinService
}

// NewContainer creates a new dependency injection container. cld may be nil,
// in which case thumbnails are stored as submitted.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	cld *cloudinary.Cloudinary,
	verifier identity.Verifier,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient, cfg.DatabaseName, cfg.EventsCollection, cfg.JoinedEventsCollection)

	var uploader services.ThumbnailUploader
	if cld != nil {
		uploader = helpers.NewCloudinaryUploader(cld)
	}

	return &Container{
		Logger:       logger,
		Config:       cfg,
		Repo:         repo,
		Health:       repo,
		Verifier:     verifier,
		EventService: services.NewEventService(repo, uploader, logger),
		JoinService:  services.NewJoinService(repo, logger),
	}
}
