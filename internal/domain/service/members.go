package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type memberService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	fs          afero.Fs
	log         zerolog.Logger
}

func newMemberService(dm contract.DataManager, slackClient contract.SlackClient, fs afero.Fs, log zerolog.Logger) *memberService {
	return &memberService{
		dm:          dm,
		slackClient: slackClient,
		fs:          fs,
		log:         log,
	}
}

// Join adds slackUserID to the recipients, or reactivates it. The bool
// reports whether the user was not an active recipient before.
func (s *memberService) Join(ctx context.Context, slackUserID string) (*entity.Recipient, bool, error) {
	existing, err := s.dm.Recipient().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing member: %w", err)
	}

	user, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		return nil, false, classifySlackError(err, "failed to get user info from slack")
	}

	recipient := &entity.Recipient{
		SlackUserID:   slackUserID,
		SlackUserName: user.Name,
		DisplayName:   displayNameOf(user),
		IsActive:      true,
	}
	if err := s.dm.Recipient().Upsert(ctx, recipient); err != nil {
		return nil, false, fmt.Errorf("failed to save member: %w", err)
	}

	added := existing == nil || !existing.IsActive
	if added {
		s.log.Info().Str("user", slackUserID).Str("name", recipient.DisplayName).Msg("member joined")
	}

	return recipient, added, nil
}

func (s *memberService) Leave(ctx context.Context, slackUserID string) error {
	existing, err := s.dm.Recipient().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}
	if existing == nil || !existing.IsActive {
		return domain.ErrMemberNotFound
	}

	if err := s.dm.Recipient().SetActive(ctx, slackUserID, false); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.log.Info().Str("user", slackUserID).Msg("member left")
	return nil
}

func (s *memberService) List(ctx context.Context) ([]*entity.Recipient, error) {
	return s.dm.Recipient().GetActive(ctx)
}

// Import reads a members file of "name=SLACKID" lines and activates every
// member in it. Blank lines and lines starting with # are ignored.
func (s *memberService) Import(ctx context.Context, path string) (int, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read members file: %w", err)
	}

	members, err := parseMembersFile(content)
	if err != nil {
		return 0, err
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, m := range members {
			if err := tx.Recipient().Upsert(ctx, m); err != nil {
				return fmt.Errorf("failed to import %s: %w", m.SlackUserID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().Int("members", len(members)).Str("file", path).Msg("members imported")
	return len(members), nil
}

func parseMembersFile(content []byte) ([]*entity.Recipient, error) {
	var members []*entity.Recipient

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, id, ok := strings.Cut(line, "=")
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("members file line %d: expected name=SLACKID, got %q", lineNo, line)
		}

		members = append(members, &entity.Recipient{
			SlackUserID:   id,
			SlackUserName: name,
			DisplayName:   name,
			IsActive:      true,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members file: %w", err)
	}

	return members, nil
}

// ExportTeam writes the full Slack user list to path as JSON, which is
// handy to look up ids for the members file.
func (s *memberService) ExportTeam(ctx context.Context, path string) (int, error) {
	users, err := s.slackClient.GetUsersContext(ctx)
	if err != nil {
		return 0, classifySlackError(err, "failed to list slack users")
	}

	content, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode slack users: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return len(users), nil
}
