// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

// Package app contains shared application-layer constants used across the
// trippr-admin services and presentation layer.
//
// All Msg* constants are the short human-readable summaries placed into the
// console's single error slot. Keeping them in one place ensures consistent
// wording throughout the UI.
package app

const (
	// MsgInvalidCredentials is shown when the supplied email/password
	// combination does not match any admin record.
	MsgInvalidCredentials = "invalid credentials"

	// MsgPasswordRequired is shown when a user-creation form is submitted
	// without a password. No remote call is made in that case.
	MsgPasswordRequired = "password is required"

	// MsgUserIDRequired is shown when a user update is submitted without
	// an id. No remote call is made in that case.
	MsgUserIDRequired = "user id is required"

	// MsgFailedToFetchPlaces is shown when the full places fetch fails.
	MsgFailedToFetchPlaces = "failed to fetch places"

	// MsgFailedToSearchPlaces is shown when a title search fails.
	MsgFailedToSearchPlaces = "failed to search places"

	// MsgFailedToAddPlace is shown when a place creation fails remotely.
	// The underlying detail is logged, never surfaced.
	MsgFailedToAddPlace = "failed to add place"

	// MsgFailedToUpdatePlace is shown when a place update fails remotely.
	MsgFailedToUpdatePlace = "failed to update place"

	// MsgFailedToDeletePlace is shown when a place delete fails remotely.
	MsgFailedToDeletePlace = "failed to delete place"

	// MsgFailedToFetchUsers is shown when the full users fetch fails.
	MsgFailedToFetchUsers = "failed to fetch users"

	// MsgFailedToAddUser is the generic fallback when user creation fails
	// and the auth provider supplied no detail message.
	MsgFailedToAddUser = "failed to add user"

	// MsgFailedToUpdateUser is shown when a user update fails remotely.
	MsgFailedToUpdateUser = "failed to update user"

	// MsgFailedToDeleteUser is shown when a user delete fails remotely.
	MsgFailedToDeleteUser = "failed to delete user"
)
