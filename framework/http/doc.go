// Package http provides JSON response helpers for controllers.
//
//	res := gohttp.NewResponse(w)
//	res.Success(map[string]any{"greeting": "hello"})   // 200 {"data": {...}}
//	res.NotFound("no such greeting")                    // 404 {"message": "..."}
//	res.Error(http.StatusConflict, "already exists")    // 409 {"message": "..."}
package http
