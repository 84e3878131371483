// Package tlsutil builds the transport credentials that protect the
// verification gRPC endpoint and, in development, issues the throwaway
// certificates those credentials load.
package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc/credentials"
)

const (
	caValidity   = 10 * 365 * 24 * time.Hour
	leafValidity = 365 * 24 * time.Hour
)

// DevCredentialPaths names the files written by GenerateDevCredentials.
type DevCredentialPaths struct {
	CACert     string
	CAKey      string
	ServerCert string
	ServerKey  string
}

// ServerCredentials loads the key pair the verification server presents to
// callers. When clientCAFile is non-empty the server also demands a client
// certificate signed by that CA, which is how partner bureau integrations
// authenticate.
func ServerCredentials(certFile, keyFile, clientCAFile string) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if clientCAFile != "" {
		pool, err := loadCertPool(clientCAFile)
		if err != nil {
			return nil, err
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return credentials.NewTLS(cfg), nil
}

// ClientCredentials builds credentials for dialing the verification server.
// With an empty caFile the system roots are trusted. serverName overrides the
// name verified against the server certificate, which dev certs need when the
// dial address is not one of their SANs. insecureSkipVerify is for local
// development only.
func ClientCredentials(caFile, serverName string, insecureSkipVerify bool) (credentials.TransportCredentials, error) {
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         serverName,
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // intentional for dev use
	}

	if caFile != "" {
		pool, err := loadCertPool(caFile)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}

	return credentials.NewTLS(cfg), nil
}

// GenerateDevCredentials issues a throwaway CA plus a server certificate for
// the given hosts and writes them under dir. The output is only suitable for
// local runs of the verification service.
func GenerateDevCredentials(dir string, hosts ...string) (DevCredentialPaths, error) {
	paths := DevCredentialPaths{
		CACert:     filepath.Join(dir, "dev-ca.pem"),
		CAKey:      filepath.Join(dir, "dev-ca-key.pem"),
		ServerCert: filepath.Join(dir, "dev-server.pem"),
		ServerKey:  filepath.Join(dir, "dev-server-key.pem"),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return paths, fmt.Errorf("tlsutil: mkdir %s: %w", dir, err)
	}

	caKey, caCert, caDER, err := issueCA()
	if err != nil {
		return paths, err
	}
	if err := writeCertAndKey(paths.CACert, paths.CAKey, caDER, caKey); err != nil {
		return paths, err
	}

	serverDER, serverKey, err := issueServerCert(caCert, caKey, hosts)
	if err != nil {
		return paths, err
	}
	if err := writeCertAndKey(paths.ServerCert, paths.ServerKey, serverDER, serverKey); err != nil {
		return paths, err
	}

	return paths, nil
}

func issueCA() (*ecdsa.PrivateKey, *x509.Certificate, []byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tlsutil: generate CA key: %w", err)
	}

	serial, err := newSerial()
	if err != nil {
		return nil, nil, nil, err
	}

	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"Verificacion Crediticia Dev CA"}},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(caValidity),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tlsutil: create CA cert: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tlsutil: parse CA cert: %w", err)
	}

	return key, cert, der, nil
}

func issueServerCert(ca *x509.Certificate, caKey *ecdsa.PrivateKey, hosts []string) ([]byte, *ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: generate server key: %w", err)
	}

	serial, err := newSerial()
	if err != nil {
		return nil, nil, err
	}

	tmpl := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{Organization: []string{"Verificacion Crediticia Dev"}},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(leafValidity),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			tmpl.IPAddresses = append(tmpl.IPAddresses, ip)
		} else {
			tmpl.DNSNames = append(tmpl.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, ca, &key.PublicKey, caKey)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: create server cert: %w", err)
	}

	return der, key, nil
}

func newSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: generate serial: %w", err)
	}
	return serial, nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("tlsutil: no CA certificate found in %s", caFile)
	}
	return pool, nil
}

func writeCertAndKey(certPath, keyPath string, der []byte, key *ecdsa.PrivateKey) error {
	if err := writePEM(certPath, "CERTIFICATE", der); err != nil {
		return err
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("tlsutil: marshal key: %w", err)
	}
	return writePEM(keyPath, "EC PRIVATE KEY", keyDER)
}

func writePEM(path, blockType string, der []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("tlsutil: write %s: %w", path, err)
	}
	defer f.Close()
	return pem.Encode(f, &pem.Block{Type: blockType, Bytes: der})
}
