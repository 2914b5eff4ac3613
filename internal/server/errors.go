// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHandlersProvided is returned by NewServer when called without the
// handler container.
var errNoHandlersProvided = errors.New("no handlers provided")
