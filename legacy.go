package hxajax

import (
	"fmt"
	"strings"
)

// Script formats for the legacy Sys.Mvc client. Each holds one %s slot
// for the options literal produced by Options.JavaScript.
const (
	LinkOnClickFormat  = "Sys.Mvc.AsyncHyperlink.handleClick(this, new Sys.UI.DomEvent(event), %s);"
	FormOnSubmitFormat = "Sys.Mvc.AsyncForm.handleSubmit(this, new Sys.UI.DomEvent(event), %s);"
)

// FormOnClickValue is the onclick handler attached to legacy async forms.
const FormOnClickValue = "Sys.Mvc.AsyncForm.handleClick(this, new Sys.UI.DomEvent(event));"

// JavaScript compiles the options into a legacy object literal:
//
//	{ insertionMode: Sys.Mvc.InsertionMode.replace, url: '/x', onSuccess: Function.createDelegate(this, done) }
//
// insertionMode is always present. Properties follow in a fixed order
// (confirm, httpMethod, loadingElementId, updateTargetId, url) with single
// quotes escaped, then handlers (onBegin, onComplete, onFailure, onSuccess)
// bound to the element. Empty values are skipped.
//
// The legacy client has no loading duration, so LoadingElementDuration is
// ignored here.
func (o *Options) JavaScript() string {
	o = o.orDefault()

	var sb strings.Builder
	sb.WriteString("{")
	sb.WriteString(" insertionMode: " + o.insertionMode.Legacy() + ",")
	sb.WriteString(propertyIfSpecified("confirm", o.Confirm))
	sb.WriteString(propertyIfSpecified("httpMethod", o.HTTPMethod))
	sb.WriteString(propertyIfSpecified("loadingElementId", o.LoadingElementID))
	sb.WriteString(propertyIfSpecified("updateTargetId", o.UpdateTargetID))
	sb.WriteString(propertyIfSpecified("url", o.URL))
	sb.WriteString(eventIfSpecified("onBegin", o.OnBegin))
	sb.WriteString(eventIfSpecified("onComplete", o.OnComplete))
	sb.WriteString(eventIfSpecified("onFailure", o.OnFailure))
	sb.WriteString(eventIfSpecified("onSuccess", o.OnSuccess))

	body := strings.TrimSuffix(sb.String(), ",")
	return body + " }"
}

// Script substitutes the JavaScript literal into format's %s slot.
//
//	opts.Script(hxajax.LinkOnClickFormat)
func (o *Options) Script(format string) string {
	return fmt.Sprintf(format, o.JavaScript())
}

func propertyIfSpecified(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + ": '" + escapeLiteral(value) + "',"
}

func eventIfSpecified(name, handler string) string {
	if handler == "" {
		return ""
	}
	return " " + name + ": Function.createDelegate(this, " + handler + "),"
}
