package systems

import (
	"encoding/json"

	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/motion"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const tuningItem = "tuning"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "wallhop",
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning returns the saved movement tuning, or nil when none exists.
// Missing fields in an old save fall back to the defaults.
func LoadTuning() (*motion.Config, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningItem)
	if err != nil {
		logger.Warn("could not load tuning", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	tuning := motion.DefaultConfig()
	if err := json.Unmarshal(data, &tuning); err != nil {
		logger.Warn("could not parse saved tuning", zap.Error(err))
		return nil, err
	}
	if err := tuning.Validate(); err != nil {
		logger.Warn("saved tuning is invalid, ignoring", zap.Error(err))
		return nil, err
	}

	return &tuning, nil
}

// SaveTuning writes the movement tuning to disk.
func SaveTuning(tuning motion.Config) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(tuning)
	if err != nil {
		logger.Warn("could not serialize tuning", zap.Error(err))
		return err
	}

	if err := gdataManager.SaveItem(tuningItem, data); err != nil {
		logger.Warn("could not save tuning", zap.Error(err))
		return err
	}
	logger.Info("tuning saved")
	return nil
}

// ClearTuning removes any saved movement tuning.
func ClearTuning() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(tuningItem, nil); err != nil {
		logger.Warn("could not clear tuning", zap.Error(err))
		return err
	}
	return nil
}
