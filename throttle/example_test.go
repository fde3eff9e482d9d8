package throttle_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/pace/throttle"
)

func ExampleNewRoundTripper() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	rt, err := throttle.NewRoundTripper(20*time.Millisecond, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c := &http.Client{Transport: rt}

	start := time.Now()
	for range 3 {
		resp, err := c.Get(ts.URL)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		resp.Body.Close()
	}

	fmt.Println(time.Since(start) >= 40*time.Millisecond)
	// Output: true
}

func ExampleHandler() {
	h, err := throttle.Handler(10*time.Millisecond, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "served")
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	fmt.Println(w.Code, w.Body.String())
	// Output: 200 served
}
