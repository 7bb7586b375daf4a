// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"net/http"
	"net/url"

	"github.com/doggedhttp/dogged/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes an HTTP request plan, retrying failed attempts, and
// returns the final response or error. Client implements Doer, and
// any other implementation must behave substantially the same as
// Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(p *request.Plan) (*http.Response, error)
}

// Getter is the interface that wraps the basic Get method.
type Getter interface {
	Get(url string) (*http.Response, error)
}

// Header is the interface that wraps the basic Head method.
type Header interface {
	Head(url string) (*http.Response, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.BodyBytes: string; []byte;
// io.Reader; and io.ReadCloser.
type Poster interface {
	Post(url, contentType string, body interface{}) (*http.Response, error)
}

// FormPoster is the interface that wraps the basic PostForm method.
type FormPoster interface {
	PostForm(url string, data url.Values) (*http.Response, error)
}

// Putter is the interface that wraps the basic Put method. The body
// parameter accepts the same types as Poster.
type Putter interface {
	Put(url, contentType string, body interface{}) (*http.Response, error)
}

// Patcher is the interface that wraps the basic Patch method. The
// body parameter accepts the same types as Poster.
type Patcher interface {
	Patch(url, contentType string, body interface{}) (*http.Response, error)
}

// Deleter is the interface that wraps the basic Delete method.
type Deleter interface {
	Delete(url string) (*http.Response, error)
}

// IdleCloser is the interface that wraps the basic
// CloseIdleConnections method.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do method, the verb
// methods, and CloseIdleConnections.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	Getter
	Header
	Poster
	FormPoster
	Putter
	Patcher
	Deleter
	IdleCloser
}

// Get uses the specified Doer to issue a GET to the specified URL,
// using the same policies as d.Do.
//
// To make a request plan with custom headers, use request.NewPlan and
// d.Do.
func Get(d Doer, url string) (*http.Response, error) {
	return bodiless(d, "GET", url)
}

// Head uses the specified Doer to issue a HEAD to the specified URL,
// using the same policies as d.Do.
func Head(d Doer, url string) (*http.Response, error) {
	return bodiless(d, "HEAD", url)
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL, using the same policies as d.Do.
func Delete(d Doer, url string) (*http.Response, error) {
	return bodiless(d, "DELETE", url)
}

// Post uses the specified Doer to issue a POST to the specified URL,
// using the same policies as d.Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewPlan and request.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
func Post(d Doer, url, contentType string, body interface{}) (*http.Response, error) {
	return withBody(d, "POST", url, contentType, body)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL, with data's keys and values URL-encoded as the request body
// and the Content-Type header set to
// application/x-www-form-urlencoded.
func PostForm(d Doer, url string, data url.Values) (*http.Response, error) {
	return Post(d, url, "application/x-www-form-urlencoded", data.Encode())
}

// Put uses the specified Doer to issue a PUT to the specified URL,
// using the same policies as d.Do. The body parameter accepts the
// same types as Post.
func Put(d Doer, url, contentType string, body interface{}) (*http.Response, error) {
	return withBody(d, "PUT", url, contentType, body)
}

// Patch uses the specified Doer to issue a PATCH to the specified
// URL, using the same policies as d.Do. The body parameter accepts
// the same types as Post.
func Patch(d Doer, url, contentType string, body interface{}) (*http.Response, error) {
	return withBody(d, "PATCH", url, contentType, body)
}

func bodiless(d Doer, method, url string) (*http.Response, error) {
	p, err := request.NewPlan(method, url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(p)
}

func withBody(d Doer, method, url, contentType string, body interface{}) (*http.Response, error) {
	b, err := request.BodyBytes(body)
	if err != nil {
		return nil, err
	}
	p, err := request.NewPlan(method, url, b)
	if err != nil {
		return nil, err
	}
	p.Header.Set("Content-Type", contentType)
	return d.Do(p)
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("dogged: nil doer")
	}
	if e, ok := d.(Executor); ok {
		return e
	}
	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(p *request.Plan) (*http.Response, error) {
	return i.doer.Do(p)
}

func (i inflated) Get(url string) (*http.Response, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*http.Response, error) {
	return Head(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*http.Response, error) {
	return Post(i.doer, url, contentType, body)
}

func (i inflated) PostForm(url string, data url.Values) (*http.Response, error) {
	return PostForm(i.doer, url, data)
}

func (i inflated) Put(url, contentType string, body interface{}) (*http.Response, error) {
	return Put(i.doer, url, contentType, body)
}

func (i inflated) Patch(url, contentType string, body interface{}) (*http.Response, error) {
	return Patch(i.doer, url, contentType, body)
}

func (i inflated) Delete(url string) (*http.Response, error) {
	return Delete(i.doer, url)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
