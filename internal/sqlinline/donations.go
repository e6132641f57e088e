package sqlinline

const QInsertDonation = `--sql 8d5f3a1c-4e9b-46d2-a7c0-9b2e6f4d8a35
insert into donations (id, user_id, campaign_id, amount, currency, status, donor_country, created_at)
values (gen_random_uuid(), $1::uuid, nullif($2::text, '')::uuid, $3::bigint, $4::text, 'pending', nullif($5::text, ''), now())
returning id;
`

const QSetDonationOrder = `--sql e3b7d9f5-1a6c-48e0-b2d8-7c4f0a9e3b51
update donations
set order_id = $2::text
where id = $1::uuid;
`

const QSelectDonationForVerify = `--sql 4c2e8a6d-7f3b-49c1-8d5a-1e9b3f6c0d27
select user_id, campaign_id, amount, status
from donations
where id = $1::uuid
limit 1;
`

// The status guard makes the pending -> terminal transition a single atomic
// statement: a donation that already settled yields no row, so repeated
// verification never increments the campaign total twice.
const QMarkDonationSuccess = `--sql b9f1c3e7-5d8a-40b6-9e2c-3a7d1f5b8e94
update donations
set status = 'success', payment_id = $2::text
where id = $1::uuid and status = 'pending'
returning campaign_id, amount;
`

const QMarkDonationFailed = `--sql 7a4d2f8c-9e6b-43a5-b1d7-5c0e8f2a6d39
update donations
set status = 'failed'
where id = $1::uuid and status = 'pending';
`

const QListDonationsByUser = `--sql f6e8b2a4-3c7d-45f9-a0b6-8d1c5e9f3a72
select d.id, d.campaign_id, coalesce(c.title, ''), d.amount, d.currency,
       coalesce(d.payment_id, ''), coalesce(d.order_id, ''), d.status, d.created_at
from donations d
left join campaigns c on c.id = d.campaign_id
where d.user_id = $1::uuid
order by d.created_at desc;
`
