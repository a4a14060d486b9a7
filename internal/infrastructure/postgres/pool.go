package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tallerok/taller-api/pkg/config"
)

// Dimensionado del pool: el taller tiene un puñado de usuarios concurrentes
// y Supabase limita las conexiones del plan chico, así que el pool es corto.
const (
	poolMaxConns        = 8
	poolMinConns        = 1
	poolConnLifetime    = 30 * time.Minute
	poolConnIdleTime    = 10 * time.Minute
	poolHealthCheck     = time.Minute
	poolInitialPingWait = 5 * time.Second
)

// NewPool abre el pool contra PostgreSQL. Con DATABASE_URL definido se usa esa
// URL; si no, el DSN se arma desde DB_HOST/DB_PORT/etc. En ambos casos el dial
// fuerza IPv4 porque el host de Supabase puede resolver solo AAAA y los
// contenedores del deploy no tienen ruta IPv6.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(resolveDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolConnLifetime
	poolConfig.MaxConnIdleTime = poolConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheck
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "taller-api"
	poolConfig.ConnConfig.DialFunc = dialIPv4

	// Todos los montos del esquema son NUMERIC: el codec de shopspring/decimal
	// se registra en cada conexión para escanearlos sin pasar por strings.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, poolInitialPingWait)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// resolveDSN elige entre DATABASE_URL y el DSN armado por partes, en ambos
// casos con el host ya bajado a IPv4 cuando se puede.
func resolveDSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return urlWithIPv4Host(cfg.DatabaseURL)
	}
	if ipv4, err := lookupIPv4(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

// dialIPv4 conecta por tcp4 cuando el host tiene registro A. Si no lo tiene,
// deja que el dialer normal decida (hay entornos donde el resolver interno
// sí devuelve IPv4 en runtime).
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := lookupIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// lookupIPv4 devuelve la primera dirección A del host. Prueba el resolver del
// sistema y después uno público, porque el DNS de algunos contenedores solo
// devuelve AAAA para los hosts de Supabase.
func lookupIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s es IPv6", host)
	}

	googleDNS := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	for _, r := range []*net.Resolver{net.DefaultResolver, googleDNS} {
		ips, err := r.LookupIP(context.Background(), "ip4", host)
		if err != nil {
			continue
		}
		for _, ip := range ips {
			if ip.To4() != nil {
				return ip.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%s no tiene registro A", host)
}

// urlWithIPv4Host reescribe el hostname de una URL de conexión por su IPv4.
// Si no se puede resolver, la URL queda como estaba.
func urlWithIPv4Host(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := lookupIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
