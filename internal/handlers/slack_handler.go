package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/adhan-bot/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const clockLayout = "15:04"

type SlackHandler struct {
	memberService contract.MemberService
	statusService contract.StatusService
	signingSecret string
	log           zerolog.Logger
}

func New(memberService contract.MemberService, statusService contract.StatusService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		memberService: memberService,
		statusService: statusService,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejected unsigned slash command")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error()+". Use `/adhan help` to see the available commands")
		return
	}

	h.log.Debug().Str("command", string(cmd.Type)).Str("user", s.UserID).Msg("slash command")

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdJoin:
		return h.handleJoin(ctx, cmd, slashCmd)
	case slackcmd.CmdLeave:
		return h.handleLeave(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx)
	case slackcmd.CmdToday:
		return h.handleToday(ctx)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

// targetUser is the mentioned user, or the caller when nobody is mentioned
func targetUser(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) string {
	if len(cmd.Args) > 0 {
		return slackcmd.ParseUserMention(cmd.Args[0])
	}
	return slashCmd.UserID
}

func (h *SlackHandler) handleJoin(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID := targetUser(cmd, slashCmd)

	_, added, err := h.memberService.Join(ctx, userID)
	if err != nil {
		h.log.Error().Err(err).Str("user", userID).Msg("failed to join")
		return h.createErrorResponse(fmt.Sprintf("Error adding <@%s>: %v", userID, err))
	}

	if !added {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("ℹ️ <@%s> already receives the reminders.", userID),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> will be reminded at every prayer time!", userID),
	}
}

func (h *SlackHandler) handleLeave(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID := targetUser(cmd, slashCmd)

	if err := h.memberService.Leave(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return h.createErrorResponse(fmt.Sprintf("<@%s> does not receive the reminders", userID))
		}
		h.log.Error().Err(err).Str("user", userID).Msg("failed to leave")
		return h.createErrorResponse(fmt.Sprintf("Error removing <@%s>: %v", userID, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> will no longer be reminded.", userID),
	}
}

func (h *SlackHandler) handleList(ctx context.Context) *slack.Msg {
	members, err := h.memberService.List(ctx)
	if err != nil {
		return h.createErrorResponse("Error listing members")
	}

	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nobody receives the reminders yet. Use `/adhan join` to subscribe.",
		}
	}

	var list strings.Builder
	list.WriteString("*Receiving reminders:*\n")
	for i, member := range members {
		list.WriteString(fmt.Sprintf("%d. %s\n", i+1, member.DisplayName))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleToday(ctx context.Context) *slack.Msg {
	today, err := h.statusService.Today(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to get today's schedule")
		return h.createErrorResponse("Could not get today's prayer times, try again later")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         FormatSchedule(today),
	}
}

// FormatSchedule renders a day schedule as a Slack message
func FormatSchedule(today *entity.DaySchedule) string {
	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Prayer times for %s (%s):*\n", today.Date.Format("Mon, 02 Jan 2006"), today.Location))

	for _, e := range today.Events {
		if !e.Actionable {
			text.WriteString(fmt.Sprintf("• _%s %s_\n", e.Label, e.ClockTime.Format(clockLayout)))
			continue
		}
		line := fmt.Sprintf("• *%s* %s", e.Label, e.ClockTime.Format(clockLayout))
		if e.OffsetMinutes != 0 {
			line += fmt.Sprintf(" (reminder at %s)", e.Deadline().Format(clockLayout))
		}
		text.WriteString(line + "\n")
	}

	return text.String()
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	st := h.statusService.Status()

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*State:* %s\n", st.State))
	if !st.StartedAt.IsZero() {
		text.WriteString(fmt.Sprintf("*Running since:* %s\n", st.StartedAt.Format(time.RFC1123)))
	}
	text.WriteString(fmt.Sprintf("*Recipients:* %d\n", st.Recipients))

	switch {
	case st.NextLabel != "" && !st.NextDeadline.IsZero():
		text.WriteString(fmt.Sprintf("*Next reminder:* %s at %s\n", st.NextLabel, st.NextDeadline.Format(clockLayout)))
	case st.State == entity.StateResting:
		text.WriteString(fmt.Sprintf("*Next cycle:* %s\n", st.NextDeadline.Format(time.RFC1123)))
	}
	if st.LastError != "" {
		text.WriteString(fmt.Sprintf("*Last error:* %s\n", st.LastError))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
