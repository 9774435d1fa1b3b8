package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdJoin   CommandType = "join"
	CmdLeave  CommandType = "leave"
	CmdList   CommandType = "list"
	CmdToday  CommandType = "today"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "join", "add", "subscribe":
		cmd.Type = CmdJoin
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "leave", "remove", "rm", "unsubscribe":
		cmd.Type = CmdLeave
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "today", "times":
		cmd.Type = CmdToday
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseUserMention extracts the user id from a Slack mention such as
// <@U12345> or <@U12345|name>. Plain ids are returned unchanged.
func ParseUserMention(mention string) string {
	id := strings.TrimSpace(mention)
	id = strings.TrimPrefix(id, "<@")
	id = strings.TrimSuffix(id, ">")
	if i := strings.Index(id, "|"); i >= 0 {
		id = id[:i]
	}
	return id
}

func GetHelpText() string {
	return `*Available Commands:*

*Reminders:*
• ` + "`/adhan join`" + ` - Receive a direct message at every prayer time
• ` + "`/adhan join @user`" + ` - Add someone else
• ` + "`/adhan leave`" + ` - Stop receiving reminders
• ` + "`/adhan leave @user`" + ` - Remove someone else
• ` + "`/adhan list`" + ` - List everyone who receives reminders

*Schedule:*
• ` + "`/adhan today`" + ` - Show today's prayer times and reminder times
• ` + "`/adhan status`" + ` - Show what the bot is doing`
}
