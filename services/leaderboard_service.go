package services

import (
	"context"
	"strconv"

	"osrstrivia/models"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	leaderboardKey  = "leaderboard:xp"
	leaderboardSize = 100
)

// LeaderboardEntry is the public shape of one leaderboard row.
type LeaderboardEntry struct {
	Username          string `json:"username"`
	Level             int    `json:"level"`
	XP                int    `json:"xp"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
}

// LeaderboardService ranks users by XP. Rankings live in a redis sorted set
// for cheap reads; postgres remains the source of truth and serves as the
// fallback when redis is unavailable.
type LeaderboardService struct {
	db    *gorm.DB
	redis *redis.Client
	hub   *Hub
}

func NewLeaderboardService(db *gorm.DB, redisClient *redis.Client) *LeaderboardService {
	return &LeaderboardService{db: db, redis: redisClient}
}

// AttachHub wires a websocket hub that receives a fresh top-10 snapshot
// whenever a score changes.
func (s *LeaderboardService) AttachHub(hub *Hub) {
	s.hub = hub
}

// RecordXP publishes a user's new XP total to the sorted set and notifies
// websocket subscribers.
func (s *LeaderboardService) RecordXP(user *models.User) error {
	if s.redis != nil {
		err := s.redis.ZAdd(context.Background(), leaderboardKey, redis.Z{
			Score:  float64(user.XP),
			Member: strconv.FormatUint(uint64(user.ID), 10),
		}).Err()
		if err != nil {
			return err
		}
	}

	if s.hub != nil {
		go func() {
			entries, err := s.GetTop(10)
			if err != nil {
				log.WithError(err).Warn("failed to build leaderboard snapshot for broadcast")
				return
			}
			s.hub.BroadcastLeaderboard(entries)
		}()
	}
	return nil
}

// GetTop returns up to limit users ranked by XP descending.
func (s *LeaderboardService) GetTop(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > leaderboardSize {
		limit = leaderboardSize
	}

	if s.redis != nil {
		entries, err := s.topFromRedis(limit)
		if err == nil {
			return entries, nil
		}
		log.WithError(err).Warn("redis leaderboard unavailable, falling back to database")
	}
	return s.topFromDB(limit)
}

func (s *LeaderboardService) topFromRedis(limit int) ([]LeaderboardEntry, error) {
	ids, err := s.redis.ZRevRange(context.Background(), leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// The set is rebuilt lazily; an empty set may just mean a fresh
		// redis instance, so rank from the database instead.
		return s.topFromDB(limit)
	}

	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[strconv.FormatUint(uint64(u.ID), 10)] = u
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, entryFor(u))
	}
	return entries, nil
}

func (s *LeaderboardService) topFromDB(limit int) ([]LeaderboardEntry, error) {
	var users []models.User
	if err := s.db.Order("xp DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, entryFor(u))
	}
	return entries, nil
}

func entryFor(u models.User) LeaderboardEntry {
	return LeaderboardEntry{
		Username:          u.Username,
		Level:             u.Level,
		XP:                u.XP,
		QuestionsAnswered: u.QuestionsAnswered,
		CorrectAnswers:    u.CorrectAnswers,
	}
}
