// Package common holds the MQTT command-channel types shared between an
// OBD session and a remote operator: commands flow in over the command
// topic. CommandAck describes an acknowledgement; pkg/mqtt publishes none.
package common

// CommandType identifies a remote command delivered over the MQTT command topic.
type CommandType string

const (
	// CommandTypeClearDTCs clears active and permanent trouble codes (Mode 04).
	CommandTypeClearDTCs CommandType = "clear_dtcs"
	// CommandTypeSetFreezeFrame toggles redirecting current-data PID requests
	// to their freeze-frame (Mode 02) equivalents.
	CommandTypeSetFreezeFrame CommandType = "set_freeze_frame"
	// CommandTypeStartRecording begins journaling the session to a replay file.
	CommandTypeStartRecording CommandType = "start_recording"
	// CommandTypeStopRecording ends the active recording, if any.
	CommandTypeStopRecording CommandType = "stop_recording"
)

// ServerCommand is a command received from a remote operator over MQTT.
type ServerCommand struct {
	Type   CommandType   `json:"type"`
	Params CommandParams `json:"params,omitempty"`
}

// CommandParams carries the optional arguments a CommandType needs. Fields
// are pointers so an absent argument is omitted from JSON rather than
// defaulting to a misleading zero value.
type CommandParams struct {
	FreezeFrame *bool   `json:"freeze_frame,omitempty"`
	JournalPath *string `json:"journal_path,omitempty"`
}

// CommandAck acknowledges execution of a ServerCommand.
type CommandAck struct {
	CommandID string `json:"command_id,omitempty"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
}
