package errorpayload

import (
	"encoding/xml"
	"io"
)

// RPCError is an RFC 6241 §4.3 rpc-error element, restricted to the
// fields an access-control denial needs.
type RPCError struct {
	XMLName  xml.Name `xml:"rpc-error"`
	Type     string   `xml:"error-type"`
	Tag      string   `xml:"error-tag"`
	Severity string   `xml:"error-severity"`
	AppTag   string   `xml:"error-app-tag"`
	Message  string   `xml:"error-message"`
}

// AccessDenied writes an <rpc-error> element for a NACM access-control
// denial to sink: error-type "application", error-tag "access-denied",
// error-severity "error", the given app-tag and message.
//
// There is no NETCONF/RESTCONF error-payload library anywhere in the
// retrieved example pack, so this uses encoding/xml directly (see
// DESIGN.md).
func AccessDenied(sink io.Writer, appTag, message string) error {
	payload := RPCError{
		Type:     "application",
		Tag:      "access-denied",
		Severity: "error",
		AppTag:   appTag,
		Message:  message,
	}
	enc := xml.NewEncoder(sink)
	enc.Indent("", "  ")
	return enc.Encode(payload)
}
