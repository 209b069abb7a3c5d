package hxajax

// Attribute names read by the unobtrusive client library.
//
// These names are the wire contract with jquery-unobtrusive-ajax and must
// not change without a matching client library release.
const (
	AttrAjax            = "data-ajax"
	AttrURL             = "data-ajax-url"
	AttrMethod          = "data-ajax-method"
	AttrConfirm         = "data-ajax-confirm"
	AttrBegin           = "data-ajax-begin"
	AttrComplete        = "data-ajax-complete"
	AttrFailure         = "data-ajax-failure"
	AttrSuccess         = "data-ajax-success"
	AttrCache           = "data-ajax-cache"
	AttrLoading         = "data-ajax-loading"
	AttrLoadingDuration = "data-ajax-loading-duration"
	AttrUpdate          = "data-ajax-update"
	AttrMode            = "data-ajax-mode"
)

// Attrs compiles the options into unobtrusive data-ajax attributes.
//
// The result always carries data-ajax="true" and data-ajax-cache="true".
// String options are emitted only when non-blank, in this order:
//
//	data-ajax, url, method, confirm, begin, complete, failure, success,
//	cache, loading, loading-duration, update, mode
//
// Loading and update ids are converted with EscapeIDSelector. The loading
// duration is only emitted (as an int) when positive, and the mode only
// alongside an update target.
//
// A nil receiver compiles the default options.
func (o *Options) Attrs() Attrs {
	o = o.orDefault()

	attrs := Attrs{{Name: AttrAjax, Value: "true"}}

	addIfSpecified(&attrs, AttrURL, o.URL)
	addIfSpecified(&attrs, AttrMethod, o.HTTPMethod)
	addIfSpecified(&attrs, AttrConfirm, o.Confirm)

	addIfSpecified(&attrs, AttrBegin, o.OnBegin)
	addIfSpecified(&attrs, AttrComplete, o.OnComplete)
	addIfSpecified(&attrs, AttrFailure, o.OnFailure)
	addIfSpecified(&attrs, AttrSuccess, o.OnSuccess)

	// Caching opt-out is not representable; the client treats a missing
	// attribute as false.
	attrs = append(attrs, Attr{Name: AttrCache, Value: "true"})

	if !isBlank(o.LoadingElementID) {
		attrs = append(attrs, Attr{Name: AttrLoading, Value: EscapeIDSelector(o.LoadingElementID)})
		if o.LoadingElementDuration > 0 {
			attrs = append(attrs, Attr{Name: AttrLoadingDuration, Value: o.LoadingElementDuration})
		}
	}

	if !isBlank(o.UpdateTargetID) {
		attrs = append(attrs,
			Attr{Name: AttrUpdate, Value: EscapeIDSelector(o.UpdateTargetID)},
			Attr{Name: AttrMode, Value: o.insertionMode.Unobtrusive()},
		)
	}

	return attrs
}

func addIfSpecified(attrs *Attrs, name, value string) {
	if !isBlank(value) {
		*attrs = append(*attrs, Attr{Name: name, Value: value})
	}
}
