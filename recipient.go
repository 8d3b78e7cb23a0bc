package chatNotification

import (
	"strings"
)

const chatIDDelimiter = "_"

// recipientFromParticipants picks the participant that is not the sender.
// The list must hold exactly two distinct ids, one of them the sender's.
func recipientFromParticipants(participants []string, senderID string) (string, bool) {
	if len(participants) != 2 || participants[0] == participants[1] {
		return "", false
	}

	switch senderID {
	case participants[0]:
		return participants[1], true
	case participants[1]:
		return participants[0], true
	}

	return "", false
}

// recipientFromChatID derives the recipient from a composite
// "userId1_userId2" chat id. Ids that do not split into exactly two distinct
// participants are rejected rather than guessed at.
func recipientFromChatID(chatID, senderID string) (string, bool) {
	return recipientFromParticipants(strings.Split(chatID, chatIDDelimiter), senderID)
}
