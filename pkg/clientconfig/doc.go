// Package clientconfig validates client organisation records: identity,
// address, account team, app settings, billing and integrations.
//
// Only the client name is required. Optional fields are checked when present.
// Values outside the standard ERP, SSO, HRIS and authentication lists produce
// warnings, not errors.
package clientconfig
