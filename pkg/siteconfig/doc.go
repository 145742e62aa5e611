// Package siteconfig validates the configuration record of a gifting site.
//
// Two entry points share one set of bounds. Validate checks a whole Site and
// reports every defect at once: blocking errors, per-field inline messages and
// advisory warnings. ValidateField checks one field in isolation for
// per-keystroke feedback and never emits warnings.
//
//	res := siteconfig.Validate(site)
//	if !res.Valid {
//		return res.Err()
//	}
//
//	if msg, failed := siteconfig.ValidateField("siteName", input); failed {
//		showInline(msg)
//	}
//
// Reserved words and allowed values come from a ruletable.Provider, so each
// tenant can run with its own tables:
//
//	v := siteconfig.New(siteconfig.WithTables(registry.ForTenant(ctx, tenantID)))
package siteconfig
