package main

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Requests sent to the envios BFF",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Round trip of requests sent to the envios BFF",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1},
	}, []string{"path"})
)

var (
	destinations = []string{"Lima", "Cusco", "Trujillo", "Arequipa", "Tacna"}
	statuses     = []string{"pendiente", "enviado", "en camino", "entregado", "cancelado", "perdido"}
)

func main() {
	target := flag.String("target", "http://localhost:8080", "envios BFF base URL")
	pause := flag.Duration("pause", 200*time.Millisecond, "delay between requests")
	metricsAddr := flag.String("metrics", ":2112", "metrics listen address")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		server := &http.Server{Addr: *metricsAddr, ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		if rand.IntN(2) == 0 {
			send(client, *target, "/quote", url.Values{
				"destino":   {destinations[rand.IntN(len(destinations))]},
				"toneladas": {strconv.Itoa(rand.IntN(30))},
			})
		} else {
			send(client, *target, "/lifecycle/progress", url.Values{
				"estado": {statuses[rand.IntN(len(statuses))]},
			})
		}
		time.Sleep(*pause)
	}
}

func send(client *http.Client, target, path string, query url.Values) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	resp, err := client.Get(target + path + "?" + query.Encode())
	if err != nil {
		requestsTotal.WithLabelValues(path, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	requestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
}
