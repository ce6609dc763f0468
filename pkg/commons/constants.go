// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

// SEPARATOR joins list values inside a single config or option string.
const SEPARATOR = "<|||>"

// HEADER_REQUEST_ID carries the caller supplied request id.
const HEADER_REQUEST_ID = "X-Request-Id"
