package registry

import (
	"context"

	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/stylesheet"
	"github.com/openworkbench/themed/internal/themedoc"
)

// SetColorTheme activates the color theme with the given id. It
// returns whether a theme was applied. Requesting the already-active
// id succeeds without recompiling (and still re-broadcasts when asked).
// Unknown ids fall back to the configured default; if neither resolves,
// the call is a negative no-op. A failed load or compile leaves the
// previous theme and installed stylesheet untouched.
func (s *Service) SetColorTheme(ctx context.Context, id string, broadcast bool) (bool, error) {
	applied, appliedID, err := s.applyColorTheme(ctx, id)
	if err != nil || !applied {
		return applied, err
	}

	// Subscribers run outside the service lock so they may call back in.
	if appliedID != "" {
		s.notify(appliedID)
	}
	if broadcast {
		target := appliedID
		if target == "" {
			target = id
		}
		s.broadcast(target)
	}
	return true, nil
}

// applyColorTheme performs the locked part of activation. The returned
// id is empty when the request was a no-op repeat of the active theme.
func (s *Service) applyColorTheme(ctx context.Context, id string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.activeTheme {
		return true, "", nil
	}

	id = MigrateLegacyThemeID(id)
	contrib := findByID(s.colorThemes, id)
	if contrib == nil {
		contrib = findByID(s.colorThemes, s.defaultColorTheme)
	}
	if contrib == nil {
		s.logger.Warn().Str("theme", id).Msg("color theme not found and no usable default")
		return false, "", nil
	}

	if !contrib.IsCompiled() {
		doc, err := themedoc.LoadColorTheme(contrib.Path)
		if err != nil {
			return false, "", err
		}
		contrib.Styles = stylesheet.CompileColorTheme(contrib.ID, doc)
	}

	if err := s.sink.Install(models.KindColorTheme, contrib.Styles); err != nil {
		return false, "", err
	}

	previous := s.activeTheme
	s.activeTheme = contrib.ID
	if s.uiRoot != nil {
		s.uiRoot.SwapClass(baseVariant(previous), baseVariant(contrib.ID))
	}
	if err := s.settings.Put(ctx, SettingColorTheme, contrib.ID); err != nil {
		s.logger.Warn().Err(err).Msg("persist color theme selection")
	}
	s.logger.Info().Str("theme", contrib.ID).Msg("color theme activated")

	s.reportOnce(contrib.ExtensionID)
	return true, contrib.ID, nil
}

// SetFileIconSet activates the icon set with the given id, with the
// same lookup, caching and failure semantics as SetColorTheme.
func (s *Service) SetFileIconSet(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.activeIcons {
		return true, nil
	}

	contrib := findByID(s.iconSets, id)
	if contrib == nil {
		contrib = findByID(s.iconSets, s.defaultIconSet)
	}
	if contrib == nil {
		s.logger.Warn().Str("iconSet", id).Msg("icon set not found and no usable default")
		return false, nil
	}

	if !contrib.IsCompiled() {
		doc, err := themedoc.LoadFileIcons(contrib.Path)
		if err != nil {
			return false, err
		}
		contrib.Styles = stylesheet.CompileFileIcons(contrib.ID, contrib.Path, doc)
	}

	if err := s.sink.Install(models.KindFileIcons, contrib.Styles); err != nil {
		return false, err
	}

	s.activeIcons = contrib.ID
	if err := s.settings.Put(ctx, SettingIconSet, contrib.ID); err != nil {
		s.logger.Warn().Err(err).Msg("persist icon set selection")
	}
	s.logger.Info().Str("iconSet", contrib.ID).Msg("icon set activated")

	s.reportOnce(contrib.ExtensionID)
	return true, nil
}

// RestoreSelection re-activates the persisted theme and icon set, used
// once at startup after contributions are registered.
func (s *Service) RestoreSelection(ctx context.Context) error {
	themeID, err := s.settings.Get(ctx, SettingColorTheme, s.defaultColorTheme)
	if err != nil {
		return err
	}
	if themeID != "" {
		if _, err := s.SetColorTheme(ctx, themeID, false); err != nil {
			s.logger.Warn().Err(err).Str("theme", themeID).Msg("restore color theme")
		}
	}

	iconID, err := s.settings.Get(ctx, SettingIconSet, s.defaultIconSet)
	if err != nil {
		return err
	}
	if iconID != "" {
		if _, err := s.SetFileIconSet(ctx, iconID); err != nil {
			s.logger.Warn().Err(err).Str("iconSet", iconID).Msg("restore icon set")
		}
	}
	return nil
}

func (s *Service) broadcast(themeID string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Broadcast(ChannelThemeChanged, themeID)
}
